package session

import (
	"photofolio/shared"
)

// Session is the signed-in identity and the credentials that go with it. It
// is created from the persisted store at startup and passed explicitly to
// every component that needs to know who the user is.
type Session struct {
	User  shared.User `json:"user"`
	Token string      `json:"token"`

	// DriveToken is the Google access token obtained during this session.
	// It is never refreshed by the client.
	DriveToken string `json:"drive_token,omitempty"`
}

func (s *Session) Authenticated() bool {
	return s != nil && len(s.Token) > 0 && !s.User.ID.IsHome()
}

func (s *Session) UserID() shared.ID {
	if s == nil {
		return shared.HomeID
	}

	return s.User.ID
}

// Start replaces the current identity after a successful login.
func (s *Session) Start(user shared.User, token string) {
	s.User = user
	s.Token = token
	s.DriveToken = ""
}

func (s *Session) SetDriveToken(token string) {
	s.DriveToken = token
}

// Reset clears every credential held by the session.
func (s *Session) Reset() {
	*s = Session{}
}
