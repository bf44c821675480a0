package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"photofolio/cli/logging"
	"photofolio/cli/session"
	"photofolio/cli/utils"
	"photofolio/shared"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Context binds the backend base URL to the session whose credentials are
// sent with every request.
type Context struct {
	Server  string
	Session *session.Session
	log     *zap.Logger
}

func InitContext(server string, s *session.Session, log *zap.Logger) *Context {
	if s == nil {
		s = &session.Session{}
	}

	return &Context{
		Server:  server,
		Session: s,
		log:     logging.OrNop(log),
	}
}

func (c *Context) token() string {
	return c.Session.Token
}

func (c *Context) userID() (string, error) {
	if !c.Session.Authenticated() {
		return "", ErrNotLoggedIn
	}

	return c.Session.UserID().String(), nil
}

// decodeResponse checks the status of resp, decodes its JSON body into out
// and validates the result. Any shape mismatch is reported as
// shared.ErrMalformedResponse.
func (c *Context) decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return utils.ParseHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn("undecodable response",
			zap.String("url", resp.Request.URL.String()),
			zap.Error(err))
		return fmt.Errorf("%w: %w", shared.ErrMalformedResponse, err)
	}

	if err := shared.Validate(out); err != nil {
		c.log.Warn("invalid response",
			zap.String("url", resp.Request.URL.String()),
			zap.Error(err))
		return err
	}

	return nil
}

func expectSuccess(resp *http.Response) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return utils.ParseHTTPError(resp)
	}

	return nil
}
