package auth

import (
	"github.com/charmbracelet/huh"

	"photofolio/cli/app"
	"photofolio/cli/commands/auth/google"
	"photofolio/cli/commands/auth/login"
	"photofolio/cli/commands/auth/signup"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
)

const LoginAction = "Log In"
const SignUpAction = "Sign Up"
const GoogleAction = "Log In with Google"

// ShowAuthModel lets a signed out user pick how to authenticate. It reports
// whether the user ended up signed in.
func ShowAuthModel(a *app.App) bool {
	var action string

	options := []string{LoginAction, SignUpAction}
	if a.Drive.Configured() {
		options = append(options, GoogleAction)
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(utils.GenerateTitle("Authentication")),
			huh.NewSelect[string]().
				Options(huh.NewOptions(append(options, "Cancel")...)...).
				Value(&action),
		),
	).WithTheme(styles.Theme).WithShowHelp(true).Run()
	utils.HandleCLIError("", err)

	switch action {
	case SignUpAction:
		if signup.ShowSignupModel(a) {
			login.ShowLoginModel(a)
		}
	case LoginAction:
		login.ShowLoginModel(a)
	case GoogleAction:
		google.ShowGoogleModel(a)
	}

	return a.Authenticated()
}
