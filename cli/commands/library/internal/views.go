package internal

import (
	"photofolio/cli/gallery"
	"photofolio/shared"
)

type View int

const (
	NullView View = iota
	FilePickerView
	ImageViewerView
	ConfirmationView
	NewFolderView
	ShareView
	FilterView
	ImportView
)

type RequestType int

const (
	InvalidRequest RequestType = iota
	UploadRequest
	DeleteFolderRequest
	DeleteImageRequest
	NewFolderRequest
	ShareRequest
	FilterRequest
	ImportRequest
	ViewImageRequest
)

// ViewRequest asks the view loop to leave the browser for another view.
type ViewRequest struct {
	View   View
	Type   RequestType
	Folder shared.Folder
	Image  shared.ImageItem
	Filter gallery.Filter
}
