package google

import (
	"context"
	"strings"

	"photofolio/cli/app"
	"photofolio/cli/drive"
)

// LogIn exchanges an authorization code and signs in with the resulting
// access token, which also connects Drive.
func LogIn(ctx context.Context, a *app.App, code string) error {
	code = strings.TrimSpace(code)
	if len(code) == 0 {
		return drive.ErrNotConnected
	}

	token, err := a.Drive.Exchange(ctx, code)
	if err != nil {
		return err
	}

	return a.LoginWithGoogle(ctx, token.AccessToken)
}
