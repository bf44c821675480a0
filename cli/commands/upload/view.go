package upload

import (
	"context"
	"os"

	"photofolio/cli/app"
	"photofolio/cli/utils"
)

func ShowUpload(a *app.App, args []string) {
	utils.HandleCLIError("upload failed", Run(context.Background(), a.Library, os.Stdout, args))
}
