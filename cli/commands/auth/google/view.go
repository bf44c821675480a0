package google

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"photofolio/cli/app"
	"photofolio/cli/drive"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
)

const loginDesc = "Open the link below, sign in with Google and paste the code here.\n\n"

func ShowGoogleModel(a *app.App) {
	if !a.Drive.Configured() {
		utils.ShowErrorForm(styles.ErrStyle.Render(drive.ErrNotConfigured.Error()))
		return
	}

	var code string
	var runFunc func(errorMessages ...string) error
	runFunc = func(errMsgs ...string) error {
		fields := []huh.Field{
			huh.NewNote().
				Title(utils.GenerateTitle("Google Login")).
				Description(loginDesc + a.Drive.AuthCodeURL("photofolio-login")),
			huh.NewInput().Title("Authorization code").Value(&code),
		}

		if len(errMsgs) > 0 {
			fields = append(fields, huh.NewNote().
				Title(styles.ErrStyle.Render("Error:")).
				Description(styles.ErrStyle.Render(errMsgs[0])))
		}

		err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(styles.Theme).Run()
		if err != nil {
			return err
		}

		var loginErr error
		_ = spinner.New().Title("Logging in...").Action(func() {
			loginErr = LogIn(context.Background(), a, code)
		}).Run()
		if loginErr != nil {
			return runFunc(loginErr.Error())
		}

		return nil
	}

	utils.HandleCLIError("error logging in with Google", runFunc())
}
