package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/dustin/go-humanize"

	"photofolio/cli/gallery"
	"photofolio/cli/library"
	"photofolio/shared"
)

type Mode string

const (
	TableMode Mode = "table"
	TreeMode  Mode = "tree"
)

func ParseMode(s string) Mode {
	if Mode(strings.ToLower(s)) == TreeMode {
		return TreeMode
	}

	return TableMode
}

type rowKind int

const (
	parentRow rowKind = iota
	folderRow
	sharedRow
	imageRow
)

type row struct {
	kind   rowKind
	folder shared.Folder
	entry  shared.SharedFolder
	image  shared.ImageItem
	depth  int
}

// buildRows lists what the selection contains: a link to the parent, the
// folders below it (the whole subtree in tree mode), the folders shared with
// the user when home is selected, then the images passing filter. Images are
// left out while the selection's images are loading.
func buildRows(lib *library.Library, mode Mode, filter gallery.Filter) []row {
	var rows []row
	selection := lib.Images.Selection()
	if !selection.IsHome() {
		rows = append(rows, row{kind: parentRow})
	}

	if mode == TreeMode {
		for _, line := range lib.Tree.Render(selection, 0) {
			rows = append(rows, row{kind: folderRow, folder: line.Folder, depth: line.Depth})
		}
	} else {
		for _, folder := range lib.Tree.Children(selection) {
			rows = append(rows, row{kind: folderRow, folder: folder})
		}
	}

	if selection.IsHome() {
		for _, entry := range lib.Tree.Shared() {
			rows = append(rows, row{kind: sharedRow, entry: entry})
		}
	}

	if lib.Images.Loading() {
		return rows
	}

	for _, image := range lib.Images.View(filter) {
		rows = append(rows, row{kind: imageRow, image: image})
	}

	return rows
}

func (r row) id() shared.ID {
	switch r.kind {
	case folderRow:
		return r.folder.ID
	case sharedRow:
		return r.entry.ID
	case imageRow:
		return r.image.ID
	default:
		return shared.HomeID
	}
}

func (r row) cells(now time.Time) table.Row {
	switch r.kind {
	case parentRow:
		return table.Row{"..", "", "", ""}
	case folderRow:
		name := strings.Repeat("  ", r.depth) + shared.EscapeString(r.folder.Name) + "/"
		return table.Row{name, "folder", "", "owner"}
	case sharedRow:
		owner := r.entry.Owner.Username
		if len(owner) == 0 {
			owner = r.entry.Owner.Email
		}
		if len(owner) == 0 {
			owner = r.entry.SharedBy
		}

		access := string(r.entry.Permission)
		if len(owner) > 0 {
			access = fmt.Sprintf("%s (%s)", access, owner)
		}

		return table.Row{shared.EscapeString(r.entry.Name) + "/", "shared", relative(r.entry.SharedAt, now), access}
	default:
		return table.Row{shared.EscapeString(r.image.Name), "image", relative(r.image.CreatedAt, now), ""}
	}
}

func relative(ts shared.Timestamp, now time.Time) string {
	if !ts.Valid() {
		return ""
	}

	return humanize.RelTime(ts.Time, now, "ago", "from now")
}

func tableRows(rows []row, now time.Time) []table.Row {
	result := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.cells(now))
	}

	return result
}

func columns(rows []table.Row) []table.Column {
	nameWidth, dateWidth, accessWidth := 20, 14, 8
	for _, r := range rows {
		nameWidth = max(len(r[0]), nameWidth)
		dateWidth = max(len(r[2]), dateWidth)
		accessWidth = max(len(r[3]), accessWidth)
	}

	return []table.Column{
		{Title: "Name", Width: min(nameWidth, 48)},
		{Title: "Kind", Width: 8},
		{Title: "Added", Width: dateWidth},
		{Title: "Access", Width: min(accessWidth, 32)},
	}
}
