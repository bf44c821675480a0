package folder

import (
	"github.com/charmbracelet/huh"

	"photofolio/cli/commands/library/internal"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
	"photofolio/shared/constants"
)

// RunModel asks for the name of a new folder under parent.
func RunModel(parent shared.Folder) (internal.Event, error) {
	var confirmed bool
	var folderName string

	location := "home"
	if !parent.ID.IsHome() {
		location = parent.Name
	}

	input := huh.NewInput().
		Title("New Folder Name").
		Description("Created in " + location).
		CharLimit(constants.MaxFolderNameLength).
		Value(&folderName)
	confirm := huh.NewConfirm().Affirmative("Create").Negative("Cancel").Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(utils.GenerateTitle("New Folder")),
		input,
		confirm,
	))

	err := form.WithTheme(styles.Theme).Run()
	if !confirmed {
		return internal.Event{
			Status: internal.StatusCanceled,
			Type:   internal.NewFolderRequest,
		}, err
	}

	return internal.Event{
		Value:  folderName,
		Status: internal.StatusOk,
		Type:   internal.NewFolderRequest,
		Folder: parent,
	}, err
}
