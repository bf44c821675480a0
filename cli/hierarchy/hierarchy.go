// Package hierarchy holds the user's folders: the owned folder tree and the
// flat list of folders shared with the user.
package hierarchy

import (
	"errors"
	"slices"

	"photofolio/shared"
)

var (
	ErrMissingID       = errors.New("folder has no id")
	ErrDuplicateFolder = errors.New("folder already exists")
)

// Line is one row of a rendered tree.
type Line struct {
	Folder shared.Folder
	Depth  int
}

// Tree indexes owned folders by id and by parent. Siblings keep the order in
// which they were inserted.
type Tree struct {
	folders  map[shared.ID]shared.Folder
	order    []shared.ID
	children map[shared.ID][]shared.ID
	shared   []shared.SharedFolder
}

func New() *Tree {
	return &Tree{
		folders:  make(map[shared.ID]shared.Folder),
		children: make(map[shared.ID][]shared.ID),
	}
}

// Reset replaces every owned folder. Folders with a duplicate or missing id
// are skipped.
func (t *Tree) Reset(folders []shared.Folder) {
	t.folders = make(map[shared.ID]shared.Folder, len(folders))
	t.order = make([]shared.ID, 0, len(folders))
	t.children = make(map[shared.ID][]shared.ID)

	for _, folder := range folders {
		_ = t.Insert(folder)
	}
}

func (t *Tree) Insert(folder shared.Folder) error {
	if folder.ID.IsHome() {
		return ErrMissingID
	} else if _, ok := t.folders[folder.ID]; ok {
		return ErrDuplicateFolder
	}

	t.folders[folder.ID] = folder
	t.order = append(t.order, folder.ID)
	t.children[folder.Parent] = append(t.children[folder.Parent], folder.ID)
	return nil
}

func (t *Tree) Get(id shared.ID) (shared.Folder, bool) {
	folder, ok := t.folders[id]
	return folder, ok
}

func (t *Tree) Len() int {
	return len(t.order)
}

// Folders returns every owned folder in insertion order.
func (t *Tree) Folders() []shared.Folder {
	folders := make([]shared.Folder, 0, len(t.order))
	for _, id := range t.order {
		folders = append(folders, t.folders[id])
	}

	return folders
}

// Children returns the direct children of parent. HomeID returns the
// top-level folders.
func (t *Tree) Children(parent shared.ID) []shared.Folder {
	ids := t.children[parent]
	folders := make([]shared.Folder, 0, len(ids))
	for _, id := range ids {
		folders = append(folders, t.folders[id])
	}

	return folders
}

// Descendants returns id followed by every folder reachable from it through
// the parent relation. Unknown ids return nil.
func (t *Tree) Descendants(id shared.ID) []shared.ID {
	if _, ok := t.folders[id]; !ok {
		return nil
	}

	seen := map[shared.ID]bool{id: true}
	collected := []shared.ID{id}
	for i := 0; i < len(collected); i++ {
		for _, child := range t.children[collected[i]] {
			if !seen[child] {
				seen[child] = true
				collected = append(collected, child)
			}
		}
	}

	return collected
}

// Remove drops the given folders from the tree. Children of a removed folder
// that are not removed themselves become unreachable from home.
func (t *Tree) Remove(ids []shared.ID) {
	removed := make(map[shared.ID]bool, len(ids))
	for _, id := range ids {
		folder, ok := t.folders[id]
		if !ok {
			continue
		}

		removed[id] = true
		delete(t.folders, id)
		delete(t.children, id)

		siblings := t.children[folder.Parent]
		if i := slices.Index(siblings, id); i >= 0 {
			t.children[folder.Parent] = slices.Delete(siblings, i, i+1)
		}
	}

	if len(removed) > 0 {
		t.order = slices.DeleteFunc(t.order, func(id shared.ID) bool {
			return removed[id]
		})
	}
}

// Path returns the folders from the top level down to id.
func (t *Tree) Path(id shared.ID) []shared.Folder {
	var path []shared.Folder
	seen := make(map[shared.ID]bool)
	for folder, ok := t.folders[id]; ok && !seen[folder.ID]; folder, ok = t.folders[folder.Parent] {
		seen[folder.ID] = true
		path = append(path, folder)
	}

	slices.Reverse(path)
	return path
}

// Render projects the subtree under parent into lines, depth first. Each
// child of parent is emitted at level, its own children at level+1 and so on.
func (t *Tree) Render(parent shared.ID, level int) []Line {
	return t.render(parent, level, make(map[shared.ID]bool))
}

func (t *Tree) render(parent shared.ID, level int, seen map[shared.ID]bool) []Line {
	var lines []Line
	for _, id := range t.children[parent] {
		if seen[id] {
			continue
		}

		seen[id] = true
		lines = append(lines, Line{Folder: t.folders[id], Depth: level})
		lines = append(lines, t.render(id, level+1, seen)...)
	}

	return lines
}

func (t *Tree) SetShared(folders []shared.SharedFolder) {
	t.shared = slices.Clone(folders)
}

func (t *Tree) Shared() []shared.SharedFolder {
	return slices.Clone(t.shared)
}

func (t *Tree) GetShared(id shared.ID) (shared.SharedFolder, bool) {
	for _, folder := range t.shared {
		if folder.ID == id {
			return folder, true
		}
	}

	return shared.SharedFolder{}, false
}

// RemoveShared drops a shared folder, e.g. after the owner revoked access.
func (t *Tree) RemoveShared(id shared.ID) bool {
	before := len(t.shared)
	t.shared = slices.DeleteFunc(t.shared, func(folder shared.SharedFolder) bool {
		return folder.ID == id
	})

	return len(t.shared) != before
}
