// Package drive imports images from Google Drive. Drive files are never
// copied by the client: each selected file is registered with the backend,
// which fetches it on its own.
package drive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"

	"photofolio/cli/config"
	"photofolio/cli/logging"
	"photofolio/cli/session"
	"photofolio/shared"
	"photofolio/shared/constants"
)

var (
	ErrProvider      = errors.New("google drive")
	ErrNotConnected  = errors.New("not connected to Google Drive")
	ErrNotConfigured = errors.New("google client id is not configured")
	ErrNoFolder      = errors.New("select a folder to import into")
)

// Backend registers Drive content with the photo backend.
type Backend interface {
	SaveDriveToken(ctx context.Context, code string) error
	SyncImage(ctx context.Context, sync shared.SyncImage) error
	SyncFolder(ctx context.Context, sync shared.SyncFolder) (shared.Folder, error)
}

type ImportFailure struct {
	Ref ImageRef
	Err error
}

// ImportResult reports each selected file as imported or failed. Imports
// that succeeded are kept even when others fail.
type ImportResult struct {
	Imported []shared.ImageItem
	Failed   []ImportFailure
}

func (r ImportResult) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, failure := range r.Failed {
		errs = append(errs, fmt.Errorf("%s: %w", failure.Ref.Name, failure.Err))
	}

	return errors.Join(errs...)
}

type Bridge struct {
	oauth   *oauth2.Config
	backend Backend
	session *session.Session
	limiter *rate.Limiter
	log     *zap.Logger

	// NewLister builds the Drive reader for an access token.
	NewLister func(ctx context.Context, token string) (Lister, error)
}

// NewOAuthConfig returns the OAuth client used both for Google login and
// for reading Drive.
func NewOAuthConfig(cfg config.GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			drive.DriveReadonlyScope,
		},
		Endpoint: google.Endpoint,
	}
}

func NewBridge(
	oauthConfig *oauth2.Config,
	backend Backend,
	s *session.Session,
	log *zap.Logger,
) *Bridge {
	return &Bridge{
		oauth:   oauthConfig,
		backend: backend,
		session: s,
		limiter: rate.NewLimiter(rate.Limit(constants.ImportsPerSecond), 1),
		log:     logging.OrNop(log),
		NewLister: func(ctx context.Context, token string) (Lister, error) {
			return NewLister(ctx, token)
		},
	}
}

func (b *Bridge) Configured() bool {
	return b.oauth != nil && len(b.oauth.ClientID) > 0
}

// Connected reports whether the session holds a Drive access token.
func (b *Bridge) Connected() bool {
	return len(b.session.DriveToken) > 0
}

// AuthCodeURL is the consent page the user opens to grant access. Offline
// access is requested so the same code can be handed to the backend.
func (b *Bridge) AuthCodeURL(state string) string {
	return b.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an authorization code for an access token and keeps the
// access token in the session only.
func (b *Bridge) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if !b.Configured() {
		return nil, ErrNotConfigured
	}

	token, err := b.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchanging code: %w", ErrProvider, err)
	}

	b.session.SetDriveToken(token.AccessToken)
	b.log.Info("connected to google drive")
	return token, nil
}

// SaveDriveToken forwards an authorization code to the backend instead of
// exchanging it locally.
func (b *Bridge) SaveDriveToken(ctx context.Context, code string) error {
	return b.backend.SaveDriveToken(ctx, code)
}

func (b *Bridge) lister(ctx context.Context) (Lister, error) {
	if !b.Connected() {
		return nil, ErrNotConnected
	}

	return b.NewLister(ctx, b.session.DriveToken)
}

// ListImages returns the first page of image files in the user's Drive.
func (b *Bridge) ListImages(ctx context.Context) ([]ImageRef, error) {
	l, err := b.lister(ctx)
	if err != nil {
		return nil, err
	}

	return l.ListImages(ctx, constants.DrivePageSize)
}

func (b *Bridge) ListFolders(ctx context.Context) ([]FolderRef, error) {
	l, err := b.lister(ctx)
	if err != nil {
		return nil, err
	}

	return l.ListFolders(ctx, constants.DrivePageSize)
}

// ImportSelection registers each ref as an image of folderID, one request
// at a time. A failed registration is reported in the result and does not
// stop or undo the others. The returned error is only set when the import
// could not run at all or ctx was canceled.
func (b *Bridge) ImportSelection(
	ctx context.Context,
	refs []ImageRef,
	folderID shared.ID,
) (ImportResult, error) {
	var result ImportResult
	if folderID.IsHome() {
		return result, ErrNoFolder
	}

	email := b.driveEmail(ctx)
	for _, ref := range refs {
		if err := b.limiter.Wait(ctx); err != nil {
			return result, err
		}

		err := b.backend.SyncImage(ctx, shared.SyncImage{
			DriveEmail:  email,
			ImageName:   ref.Name,
			ImageID:     ref.ID,
			ImageFolder: folderID,
			SyncType:    constants.SyncTypeGoogleDrive,
		})
		if err != nil {
			b.log.Warn("drive image import failed",
				zap.String("file", ref.ID),
				zap.Error(err))
			result.Failed = append(result.Failed, ImportFailure{Ref: ref, Err: err})
			continue
		}

		result.Imported = append(result.Imported, shared.ImageItem{
			ID:        shared.ID(ref.ID),
			Name:      ref.Name,
			URL:       constants.DriveImageURL + ref.ID,
			FolderID:  folderID,
			CreatedAt: shared.ParseTimestamp(time.Now().UTC().Format(time.RFC3339)),
		})
	}

	b.log.Info("drive import finished",
		zap.String("folder", folderID.String()),
		zap.Int("imported", len(result.Imported)),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}

// ImportFolder creates a folder under parent that mirrors a Drive folder.
func (b *Bridge) ImportFolder(ctx context.Context, ref FolderRef, parent shared.ID) (shared.Folder, error) {
	return b.backend.SyncFolder(ctx, shared.SyncFolder{
		Name:          ref.Name,
		DriveFolderID: ref.ID,
		Parent:        parent,
	})
}

// driveEmail prefers the address of the connected Drive account and falls
// back to the signed-in user's address.
func (b *Bridge) driveEmail(ctx context.Context) string {
	if l, err := b.lister(ctx); err == nil {
		if email, err := l.Email(ctx); err == nil && len(email) > 0 {
			return email
		} else if err != nil {
			b.log.Debug("drive account lookup failed", zap.Error(err))
		}
	}

	return b.session.User.Email
}
