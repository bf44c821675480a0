package library

import (
	"photofolio/cli/app"
	"photofolio/cli/commands/library/browser"
	"photofolio/cli/commands/library/confirmation"
	"photofolio/cli/commands/library/filepicker"
	"photofolio/cli/commands/library/filter"
	"photofolio/cli/commands/library/folder"
	"photofolio/cli/commands/library/importer"
	"photofolio/cli/commands/library/internal"
	"photofolio/cli/commands/library/share"
	"photofolio/cli/commands/library/viewer"
	"photofolio/cli/utils"
)

// ShowLibraryModel runs the library browser, handing control to a sub-view
// whenever the browser asks for one and feeding its result back.
func ShowLibraryModel(a *app.App) {
	m, err := browser.RunModel(
		browser.New(a.Library, browser.ParseMode(a.Config.DefaultView)),
		internal.Event{})

	for err == nil && m.ViewRequest.View > internal.NullView {
		req := m.ViewRequest

		var event internal.Event
		var subviewErr error
		switch req.View {
		case internal.FilePickerView:
			event, subviewErr = filepicker.RunModel(req.Folder)
		case internal.ConfirmationView:
			subfolders := 0
			if req.Type == internal.DeleteFolderRequest {
				subfolders = max(len(a.Library.Tree.Descendants(req.Folder.ID))-1, 0)
			}
			event, subviewErr = confirmation.RunModel(req, subfolders)
		case internal.NewFolderView:
			event, subviewErr = folder.RunModel(req.Folder)
		case internal.ShareView:
			event, subviewErr = share.RunModel(req.Folder, a.Sharing(req.Folder.ID))
		case internal.FilterView:
			event, subviewErr = filter.RunModel(req.Filter)
		case internal.ImportView:
			event, subviewErr = importer.RunModel(a, req.Folder)
		case internal.ImageViewerView:
			event, subviewErr = viewer.RunViewerModel(a.API, req.Image)
		}

		utils.HandleCLIError("Error in subview", subviewErr)
		m, err = browser.RunModel(m, event)
	}

	utils.HandleCLIError("Error in library view", err)
}
