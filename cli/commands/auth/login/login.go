package login

import (
	"context"
	"errors"
	"net/http"

	"photofolio/cli/app"
	"photofolio/cli/utils"
)

var ErrBadCredentials = errors.New("incorrect email or password")

// LogIn signs in and persists the session. Rejected credentials come back
// as ErrBadCredentials so the form can ask again.
func LogIn(ctx context.Context, a *app.App, email, password string) error {
	err := a.Login(ctx, email, password)
	if utils.IsStatus(err, http.StatusUnauthorized) || utils.IsStatus(err, http.StatusBadRequest) {
		return ErrBadCredentials
	}

	return err
}
