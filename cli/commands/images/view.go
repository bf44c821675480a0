package images

import (
	"context"
	"os"
	"time"

	"photofolio/cli/app"
	"photofolio/cli/utils"
)

func ShowImages(a *app.App, args []string) {
	opts, err := ParseArgs(args)
	utils.HandleCLIError("invalid arguments", err)

	err = Print(context.Background(), a.Library, os.Stdout, opts, time.Now())
	utils.HandleCLIError("error loading images", err)
}
