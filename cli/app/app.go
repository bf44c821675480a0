// Package app builds the runtime every command works with: configuration,
// the persisted session and the clients bound to it.
package app

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"photofolio/cli/api"
	"photofolio/cli/config"
	"photofolio/cli/crypto"
	"photofolio/cli/drive"
	"photofolio/cli/library"
	"photofolio/cli/logging"
	"photofolio/cli/session"
	"photofolio/cli/sharing"
	"photofolio/shared"
)

type App struct {
	Paths   config.Paths
	Config  config.Config
	Store   *session.Store
	Session *session.Session
	API     *api.Context
	Library *library.Library
	Drive   *drive.Bridge
	Log     *zap.Logger
}

// New reads the config directory and the persisted session. A session that
// cannot be unsealed is discarded and the user starts signed out.
func New() (*App, error) {
	paths, err := config.SetupConfigDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.ReadConfig(paths)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(paths.Dir(), crypto.ReadCLIKey())
	s, err := store.Load()
	if errors.Is(err, session.ErrSealed) {
		log.Warn("discarding sealed session", zap.Error(err))
	} else if err != nil {
		return nil, err
	}

	a := &App{
		Paths:   paths,
		Config:  cfg,
		Store:   store,
		Session: s,
		Log:     log,
	}
	a.bind()

	log.Debug("app started",
		zap.String("server", cfg.Server),
		zap.Bool("authenticated", s.Authenticated()))
	return a, nil
}

func (a *App) bind() {
	a.API = api.InitContext(a.Config.Server, a.Session, a.Log.Named("api"))
	a.Library = library.New(a.API, a.Session, a.Config.MaxUploadBytes, a.Log.Named("library"))
	a.Drive = drive.NewBridge(
		drive.NewOAuthConfig(a.Config.Google),
		a.API,
		a.Session,
		a.Log.Named("drive"))
}

func (a *App) Authenticated() bool {
	return a.Session.Authenticated()
}

// Login signs in with an email and password and persists the session.
func (a *App) Login(ctx context.Context, email, password string) error {
	email = shared.NormalizeEmail(email)
	resp, err := a.API.Login(ctx, shared.Login{Email: email, Password: password})
	if err != nil {
		return err
	}

	return a.startSession(resp, email)
}

// LoginWithGoogle signs in with a Google access token. The token is kept
// for Drive imports.
func (a *App) LoginWithGoogle(ctx context.Context, accessToken string) error {
	resp, err := a.API.GoogleLogin(ctx, accessToken)
	if err != nil {
		return err
	}

	if err = a.startSession(resp, ""); err != nil {
		return err
	}

	a.Session.SetDriveToken(accessToken)
	return a.Store.Save(a.Session)
}

func (a *App) Register(ctx context.Context, username, email, password string) (shared.User, error) {
	return a.API.Register(ctx, shared.Register{
		Username: strings.TrimSpace(username),
		Email:    shared.NormalizeEmail(email),
		Password: password,
	})
}

// startSession keeps the token and user of a successful login. email fills
// in the address when the backend leaves it out.
func (a *App) startSession(resp shared.LoginResponse, email string) error {
	user := resp.User
	if len(user.Email) == 0 {
		user.Email = email
	}

	a.Session.Start(user, resp.Token)
	a.Log.Info("signed in", zap.String("user", user.ID.String()))
	return a.Store.Save(a.Session)
}

// ConnectDrive exchanges a Google authorization code and keeps the access
// token in the session.
func (a *App) ConnectDrive(ctx context.Context, code string) error {
	if _, err := a.Drive.Exchange(ctx, code); err != nil {
		return err
	}

	return a.Store.Save(a.Session)
}

// Sharing returns a sharing manager for folderID.
func (a *App) Sharing(folderID shared.ID) *sharing.Manager {
	return sharing.NewManager(folderID, a.API, a.Log.Named("sharing"))
}

// Logout forgets every credential and resets the loaded library.
func (a *App) Logout() error {
	if err := a.Store.Clear(); err != nil {
		return err
	}

	a.Log.Info("signed out", zap.String("user", a.Session.UserID().String()))
	a.Session.Reset()
	a.bind()
	return nil
}

func (a *App) Close() {
	_ = a.Log.Sync()
}
