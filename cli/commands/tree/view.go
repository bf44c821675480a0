package tree

import (
	"context"
	"os"

	"photofolio/cli/app"
	"photofolio/cli/utils"
)

func ShowTree(a *app.App, _ []string) {
	utils.HandleCLIError("error loading folders", Print(context.Background(), a.Library, os.Stdout))
}
