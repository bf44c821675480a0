package internal

import (
	"photofolio/cli/drive"
	"photofolio/cli/gallery"
	"photofolio/shared"
)

type EventStatus int

const (
	StatusInvalid EventStatus = iota
	StatusOk
	StatusCanceled
)

// Event is what a view hands back to the browser when it closes.
type Event struct {
	Value  string
	Values []string
	Status EventStatus
	Type   RequestType
	Folder shared.Folder
	Image  shared.ImageItem
	Filter gallery.Filter

	// Import is set by the import view, which runs the import itself.
	Import       drive.ImportResult
	SyncedFolder *shared.Folder
	Err          error
}
