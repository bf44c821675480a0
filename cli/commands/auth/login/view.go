package login

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"photofolio/cli/app"
	"photofolio/cli/crypto"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
)

var cliKeyMessage = `Your session is saved in %[1]s without encryption.

To seal it, set a key of your choosing in your environment
before logging in:

- Set in your shell's config file
  Ex: echo "export %[2]s=xxxx" >> .bashrc
OR
- Prefix commands with the env var
  Ex: %[2]s=xxxx photofolio library

Sessions sealed with a key can only be opened with the same key.`

func ShowLoginModel(a *app.App) {
	var email string
	var password string

	var runFunc func(errorMessages ...string) error
	runFunc = func(errMsgs ...string) error {
		title := huh.NewNote().Title(utils.GenerateTitle("Login"))
		if len(errMsgs) > 0 {
			title.Description(styles.ErrStyle.Render(errMsgs[0]))
		}

		err := huh.NewForm(
			huh.NewGroup(
				title,
				huh.NewInput().Title("Email").
					Validate(shared.ValidateEmail).
					Value(&email),
				huh.NewInput().Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
				huh.NewConfirm().Affirmative("Log In").Negative(""),
			),
		).WithTheme(styles.Theme).WithShowHelp(true).Run()
		if err != nil {
			return err
		}

		var loginErr error
		_ = spinner.New().Title("Logging in...").Action(func() {
			loginErr = LogIn(context.Background(), a, email, password)
		}).Run()
		if loginErr != nil {
			return runFunc(loginErr.Error())
		}

		if crypto.ReadCLIKey() == nil {
			showCLIKeyNote(a.Paths.Dir())
		}

		return nil
	}

	utils.HandleCLIError("error logging in", runFunc())
}

func showCLIKeyNote(dir string) {
	msg := fmt.Sprintf(cliKeyMessage, dir, crypto.CLIKeyEnvVar)
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(
				utils.GenerateTitle("Session Key")).
				Description(msg),
			huh.NewConfirm().Affirmative("OK").Negative(""))).
		WithTheme(styles.Theme).Run()
	utils.HandleCLIError("error showing session note", err)
}
