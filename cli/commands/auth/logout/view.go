package logout

import (
	"github.com/charmbracelet/huh/spinner"

	"photofolio/cli/app"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
)

func ShowLogoutModel(a *app.App) {
	var err error
	_ = spinner.New().Title("Logging out...").Action(
		func() {
			err = a.Logout()
		}).Run()
	utils.HandleCLIError("error logging out", err)

	styles.PrintSuccessStr("You are logged out")
}
