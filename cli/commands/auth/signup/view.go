package signup

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"go.uber.org/zap"

	"photofolio/cli/app"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
)

// ShowSignupModel registers a new account. It reports whether the account
// was created.
func ShowSignupModel(a *app.App) bool {
	var username string
	var email string
	var password string

	var runFunc func(errorMessages ...string) error
	runFunc = func(errMsgs ...string) error {
		title := huh.NewNote().Title(utils.GenerateTitle("Sign Up"))
		if len(errMsgs) > 0 {
			title.Description(styles.ErrStyle.Render("Error: " + errMsgs[0]))
		}

		err := huh.NewForm(
			huh.NewGroup(
				title,
				huh.NewInput().Title("Username").
					Validate(validateUsername).
					Value(&username),
				huh.NewInput().Title("Email").
					Validate(shared.ValidateEmail).
					Value(&email),
				huh.NewInput().Title("Password").
					EchoMode(huh.EchoModePassword).
					Validate(validatePassword).
					Value(&password),
				huh.NewInput().Title("Confirm Password").
					EchoMode(huh.EchoModePassword).
					Validate(func(s string) error {
						if s != password {
							return errors.New("passwords do not match")
						}

						return nil
					}),
				huh.NewConfirm().Affirmative("Submit").Negative(""),
			),
		).WithTheme(styles.Theme).Run()
		if err != nil {
			return err
		}

		var user shared.User
		var signupErr error
		_ = spinner.New().Title("Creating account...").Action(
			func() {
				user, signupErr = a.Register(context.Background(), username, email, password)
			}).Run()
		if signupErr != nil {
			return runFunc(signupErr.Error())
		}

		a.Log.Info("account created", zap.String("username", user.Username))
		return nil
	}

	err := runFunc()
	if errors.Is(err, huh.ErrUserAborted) {
		return false
	}
	utils.HandleCLIError("error signing up", err)

	err = huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(utils.GenerateTitle("Signup Complete")).
			Description("You may now log in!"),
		huh.NewConfirm().Affirmative("Log In").Negative(""))).
		WithTheme(styles.Theme).Run()
	utils.HandleCLIError("", err)
	return true
}
