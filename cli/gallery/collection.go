// Package gallery holds the images of the selected folder and the filters
// applied to them.
package gallery

import (
	"slices"

	"photofolio/shared"
)

// Ticket identifies the fetch issued for one selection. A response carrying
// an outdated ticket is dropped.
type Ticket struct {
	Selection  shared.ID
	Generation uint64
}

// Collection owns the images of the current selection only. It is not safe
// for concurrent use; fetches run elsewhere and report back through Resolve.
type Collection struct {
	selection  shared.ID
	generation uint64
	images     []shared.ImageItem
	loading    bool
	err        error
}

func NewCollection() *Collection {
	return &Collection{}
}

// Begin starts a new selection and returns the ticket its fetch must carry.
// Images of the previous selection stay visible until the fetch resolves.
func (c *Collection) Begin(selection shared.ID) Ticket {
	c.generation++
	c.selection = selection
	c.loading = true
	return c.Current()
}

func (c *Collection) Current() Ticket {
	return Ticket{Selection: c.selection, Generation: c.generation}
}

func (c *Collection) Selection() shared.ID {
	return c.selection
}

// IsCurrent reports whether ticket belongs to the latest selection.
func (c *Collection) IsCurrent(ticket Ticket) bool {
	return ticket == c.Current()
}

// Resolve applies the outcome of a fetch. It returns false, changing
// nothing, when ticket is stale. A failed fetch keeps the images already
// shown and records err.
func (c *Collection) Resolve(ticket Ticket, images []shared.ImageItem, err error) bool {
	if !c.IsCurrent(ticket) {
		return false
	}

	c.loading = false
	if err != nil {
		c.err = err
		return true
	}

	c.images = slices.Clone(images)
	c.err = nil
	return true
}

func (c *Collection) Loading() bool {
	return c.loading
}

func (c *Collection) Err() error {
	return c.err
}

func (c *Collection) DismissError() {
	c.err = nil
}

// Images returns a copy of the loaded images.
func (c *Collection) Images() []shared.ImageItem {
	return slices.Clone(c.images)
}

func (c *Collection) Len() int {
	return len(c.images)
}

func (c *Collection) Get(id shared.ID) (shared.ImageItem, bool) {
	for _, image := range c.images {
		if image.ID == id {
			return image, true
		}
	}

	return shared.ImageItem{}, false
}

// View returns the images passing f, computed from the full loaded set.
func (c *Collection) View(f Filter) []shared.ImageItem {
	return f.Apply(c.images)
}

// Append adds images in the given order.
func (c *Collection) Append(images ...shared.ImageItem) {
	c.images = append(c.images, images...)
}

func (c *Collection) Remove(id shared.ID) bool {
	before := len(c.images)
	c.images = slices.DeleteFunc(c.images, func(image shared.ImageItem) bool {
		return image.ID == id
	})

	return len(c.images) != before
}

// RemoveInFolders drops every image whose folder is in folders and returns
// how many were removed.
func (c *Collection) RemoveInFolders(folders []shared.ID) int {
	set := make(map[shared.ID]bool, len(folders))
	for _, id := range folders {
		set[id] = true
	}

	before := len(c.images)
	c.images = slices.DeleteFunc(c.images, func(image shared.ImageItem) bool {
		return !image.FolderID.IsHome() && set[image.FolderID]
	})

	return before - len(c.images)
}
