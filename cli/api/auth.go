package api

import (
	"context"
	"encoding/json"

	"photofolio/cli/requests"
	"photofolio/shared"
	"photofolio/shared/endpoints"
)

// Login exchanges an email and password for a bearer token. The session is
// not modified; callers start it with the returned values.
func (c *Context) Login(ctx context.Context, login shared.Login) (shared.LoginResponse, error) {
	reqData, err := json.Marshal(login)
	if err != nil {
		return shared.LoginResponse{}, err
	}

	return c.submitLogin(ctx, endpoints.Login, reqData)
}

// GoogleLogin exchanges a Google access token for a bearer token.
func (c *Context) GoogleLogin(ctx context.Context, accessToken string) (shared.LoginResponse, error) {
	reqData, err := json.Marshal(shared.GoogleLogin{AccessToken: accessToken})
	if err != nil {
		return shared.LoginResponse{}, err
	}

	return c.submitLogin(ctx, endpoints.GoogleLogin, reqData)
}

func (c *Context) submitLogin(
	ctx context.Context,
	endpoint endpoints.Endpoint,
	reqData []byte,
) (shared.LoginResponse, error) {
	url := endpoint.Format(c.Server)
	resp, err := requests.PostRequest(ctx, "", url, reqData)
	if err != nil {
		return shared.LoginResponse{}, err
	}

	var loginResponse shared.LoginResponse
	if err = c.decodeResponse(resp, &loginResponse); err != nil {
		return shared.LoginResponse{}, err
	}

	return loginResponse, nil
}

func (c *Context) Register(ctx context.Context, register shared.Register) (shared.User, error) {
	reqData, err := json.Marshal(register)
	if err != nil {
		return shared.User{}, err
	}

	url := endpoints.Register.Format(c.Server)
	resp, err := requests.PostRequest(ctx, "", url, reqData)
	if err != nil {
		return shared.User{}, err
	}

	var registerResponse shared.RegisterResponse
	if err = c.decodeResponse(resp, &registerResponse); err != nil {
		return shared.User{}, err
	}

	return registerResponse.User, nil
}
