package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"photofolio/cli/app"
	"photofolio/cli/commands/library/internal"
	"photofolio/cli/drive"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
)

var errNothingFound = errors.New("nothing found in Google Drive")

func canceled(err error) internal.Event {
	return internal.Event{Status: internal.StatusCanceled, Type: internal.ImportRequest, Err: err}
}

// askCode shows the consent page link and reads the code the user pastes
// back. An empty code means the user gave up.
func askCode(a *app.App, title, desc, errMsg string) (string, error) {
	var code string
	fields := []huh.Field{
		huh.NewNote().
			Title(utils.GenerateTitle(title)).
			Description(desc + "\n\n" + a.Drive.AuthCodeURL("photofolio")),
		huh.NewInput().Title("Authorization code").Value(&code),
	}

	if len(errMsg) > 0 {
		fields = append(fields, huh.NewNote().
			Title(styles.ErrStyle.Render("Error:")).
			Description(styles.ErrStyle.Render(errMsg)))
	}

	err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(styles.Theme).Run()
	return strings.TrimSpace(code), err
}

func connect(a *app.App) error {
	var errMsg string
	for {
		code, err := askCode(a,
			"Connect Google Drive",
			"Open the link below, allow read access to your Drive and paste the code here.",
			errMsg)
		if err != nil {
			return err
		} else if len(code) == 0 {
			return drive.ErrNotConnected
		}

		_ = spinner.New().Title("Connecting to Google Drive...").
			Action(func() {
				err = a.ConnectDrive(context.Background(), code)
			}).Run()
		if err == nil {
			return nil
		}

		errMsg = err.Error()
	}
}

func importImages(a *app.App, folder shared.Folder) (internal.Event, error) {
	var refs []drive.ImageRef
	var err error
	_ = spinner.New().Title("Listing Drive images...").
		Action(func() {
			refs, err = a.Drive.ListImages(context.Background())
		}).Run()
	if err != nil {
		return canceled(err), nil
	} else if len(refs) == 0 {
		return canceled(errNothingFound), nil
	}

	var chosen []int
	var confirmed bool
	err = huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().
			Title(fmt.Sprintf("Import into '%s'", folder.Name)).
			Description("Press 'x' to select").
			Options(imageOptions(refs)...).
			Value(&chosen),
		huh.NewConfirm().Affirmative("Import").Negative("Cancel").Value(&confirmed),
	)).WithTheme(styles.Theme).Run()
	if err != nil || !confirmed || len(chosen) == 0 {
		return canceled(nil), err
	}

	var result drive.ImportResult
	selected := pick(refs, chosen)
	_ = spinner.New().Title(fmt.Sprintf("Importing %d image(s)...", len(selected))).
		Action(func() {
			result, err = a.Drive.ImportSelection(context.Background(), selected, folder.ID)
		}).Run()
	if err != nil && len(result.Imported) == 0 {
		return canceled(err), nil
	}

	a.Log.Debug(summarize(result))
	return internal.Event{
		Status: internal.StatusOk,
		Type:   internal.ImportRequest,
		Folder: folder,
		Import: result,
	}, nil
}

func syncFolder(a *app.App, parent shared.Folder) (internal.Event, error) {
	var refs []drive.FolderRef
	var err error
	_ = spinner.New().Title("Listing Drive folders...").
		Action(func() {
			refs, err = a.Drive.ListFolders(context.Background())
		}).Run()
	if err != nil {
		return canceled(err), nil
	} else if len(refs) == 0 {
		return canceled(errNothingFound), nil
	}

	var chosen int
	var confirmed bool
	err = huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(fmt.Sprintf("Sync a Drive folder into '%s'", parent.Name)).
			Options(folderOptions(refs)...).
			Value(&chosen),
		huh.NewConfirm().Affirmative("Sync").Negative("Cancel").Value(&confirmed),
	)).WithTheme(styles.Theme).Run()
	if err != nil || !confirmed {
		return canceled(nil), err
	}

	var folder shared.Folder
	_ = spinner.New().Title("Creating synced folder...").
		Action(func() {
			folder, err = a.Drive.ImportFolder(context.Background(), refs[chosen], parent.ID)
		}).Run()
	if err != nil {
		return canceled(err), nil
	}

	return internal.Event{
		Status:       internal.StatusOk,
		Type:         internal.ImportRequest,
		Folder:       parent,
		SyncedFolder: &folder,
	}, nil
}

func authorizeServer(a *app.App) (internal.Event, error) {
	code, err := askCode(a,
		"Server Sync",
		"Open the link below and paste the code to let the server read your Drive.",
		"")
	if err != nil || len(code) == 0 {
		return canceled(nil), err
	}

	_ = spinner.New().Title("Authorizing server sync...").
		Action(func() {
			err = a.Drive.SaveDriveToken(context.Background(), code)
		}).Run()
	if err != nil {
		return canceled(err), nil
	}

	return internal.Event{
		Status: internal.StatusOk,
		Type:   internal.ImportRequest,
		Value:  "Server sync authorized",
	}, nil
}

// RunModel imports Drive content into folder. The Drive account is
// connected first when the session has no Drive token.
func RunModel(a *app.App, folder shared.Folder) (internal.Event, error) {
	if !a.Drive.Connected() {
		if !a.Drive.Configured() {
			return canceled(drive.ErrNotConfigured), nil
		} else if err := connect(a); err != nil {
			return canceled(err), nil
		}
	}

	action := Cancel
	err := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(utils.GenerateTitle("Google Drive")).
			Description(fmt.Sprintf("Importing into '%s'", folder.Name)),
		huh.NewSelect[Action]().
			Title("Select an action to perform").
			Options(menu(a.Library.CanSyncFolder(folder.ID) == nil)...).
			Value(&action),
	)).WithTheme(styles.Theme).Run()
	if err != nil {
		return canceled(nil), err
	}

	switch action {
	case ImportImages:
		return importImages(a, folder)
	case SyncFolder:
		return syncFolder(a, folder)
	case AuthorizeServer:
		return authorizeServer(a)
	}

	return canceled(nil), nil
}
