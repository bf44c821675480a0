package confirmation

import (
	"github.com/charmbracelet/huh"

	"photofolio/cli/commands/library/internal"
	"photofolio/cli/styles"
)

func RunModel(req internal.ViewRequest, subfolders int) (internal.Event, error) {
	var confirmed bool
	confirm := huh.NewConfirm().Affirmative("Yes").Negative("No").Value(&confirmed)

	title, desc := GenConfirmMsg(req, subfolders)
	confirm.Title(title)
	confirm.Description(desc)

	err := huh.NewForm(huh.NewGroup(confirm)).WithTheme(styles.DestructiveTheme()).Run()
	if !confirmed {
		return internal.Event{Status: internal.StatusCanceled, Type: req.Type}, err
	}

	return internal.Event{
		Status: internal.StatusOk,
		Type:   req.Type,
		Folder: req.Folder,
		Image:  req.Image,
	}, err
}
