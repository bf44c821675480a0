package drive

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"photofolio/cli/config"
	"photofolio/cli/session"
	"photofolio/shared"
	"photofolio/shared/constants"
)

type fakeBackend struct {
	synced  []shared.SyncImage
	fail    map[string]error
	codes   []string
	folders []shared.SyncFolder
}

func (f *fakeBackend) SaveDriveToken(_ context.Context, code string) error {
	f.codes = append(f.codes, code)
	return nil
}

func (f *fakeBackend) SyncImage(_ context.Context, sync shared.SyncImage) error {
	f.synced = append(f.synced, sync)
	return f.fail[sync.ImageID]
}

func (f *fakeBackend) SyncFolder(_ context.Context, sync shared.SyncFolder) (shared.Folder, error) {
	f.folders = append(f.folders, sync)
	return shared.Folder{ID: "30", Name: sync.Name, Parent: sync.Parent}, nil
}

type fakeLister struct {
	email string
	err   error
}

func (f *fakeLister) ListImages(context.Context, int64) ([]ImageRef, error) {
	return []ImageRef{{ID: "f1", Name: "one.jpg"}}, f.err
}

func (f *fakeLister) ListFolders(context.Context, int64) ([]FolderRef, error) {
	return []FolderRef{{ID: "d1", Name: "Camera"}}, f.err
}

func (f *fakeLister) Email(context.Context) (string, error) {
	return f.email, f.err
}

func testBridge(backend Backend, s *session.Session, lister Lister) *Bridge {
	b := NewBridge(NewOAuthConfig(config.GoogleConfig{ClientID: "id"}), backend, s, nil)
	b.limiter = rate.NewLimiter(rate.Inf, 1)
	b.NewLister = func(context.Context, string) (Lister, error) {
		return lister, nil
	}
	return b
}

func connectedSession() *session.Session {
	s := &session.Session{}
	s.Start(shared.User{ID: "5", Email: "lan@example.com"}, "token")
	s.SetDriveToken("drive-token")
	return s
}

func TestImportSelectionPartialFailure(t *testing.T) {
	boom := errors.New("boom")
	backend := &fakeBackend{fail: map[string]error{"f2": boom}}
	b := testBridge(backend, connectedSession(), &fakeLister{email: "drive@example.com"})

	refs := []ImageRef{
		{ID: "f1", Name: "one.jpg"},
		{ID: "f2", Name: "two.jpg"},
		{ID: "f3", Name: "three.jpg"},
	}

	result, err := b.ImportSelection(context.Background(), refs, "3")
	require.NoError(t, err)

	require.Len(t, result.Imported, 2)
	assert.Equal(t, shared.ID("f1"), result.Imported[0].ID)
	assert.Equal(t, shared.ID("f3"), result.Imported[1].ID)
	assert.Equal(t, constants.DriveImageURL+"f3", result.Imported[1].URL)
	assert.Equal(t, shared.ID("3"), result.Imported[1].FolderID)
	assert.True(t, result.Imported[0].CreatedAt.Valid())

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "f2", result.Failed[0].Ref.ID)
	assert.ErrorIs(t, result.Err(), boom)

	require.Len(t, backend.synced, 3)
	assert.Equal(t, "drive@example.com", backend.synced[0].DriveEmail)
	assert.Equal(t, constants.SyncTypeGoogleDrive, backend.synced[0].SyncType)
	assert.Equal(t, shared.ID("3"), backend.synced[0].ImageFolder)
}

func TestImportSelectionNeedsFolder(t *testing.T) {
	backend := &fakeBackend{}
	b := testBridge(backend, connectedSession(), &fakeLister{})

	_, err := b.ImportSelection(context.Background(), []ImageRef{{ID: "f1"}}, shared.HomeID)
	assert.ErrorIs(t, err, ErrNoFolder)
	assert.Empty(t, backend.synced)
}

func TestImportSelectionCanceled(t *testing.T) {
	backend := &fakeBackend{}
	b := testBridge(backend, connectedSession(), &fakeLister{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.ImportSelection(ctx, []ImageRef{{ID: "f1"}}, "3")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, backend.synced)
}

func TestEmailFallback(t *testing.T) {
	backend := &fakeBackend{}
	s := connectedSession()
	b := testBridge(backend, s, &fakeLister{err: errors.New("offline")})

	result, err := b.ImportSelection(context.Background(), []ImageRef{{ID: "f1"}}, "3")
	require.NoError(t, err)
	assert.NoError(t, result.Err())
	assert.Equal(t, "lan@example.com", backend.synced[0].DriveEmail)
}

func TestNotConnected(t *testing.T) {
	s := &session.Session{}
	b := testBridge(&fakeBackend{}, s, &fakeLister{})
	assert.False(t, b.Connected())

	_, err := b.ListImages(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = b.ListFolders(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestListThroughLister(t *testing.T) {
	b := testBridge(&fakeBackend{}, connectedSession(), &fakeLister{})

	images, err := b.ListImages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one.jpg", images[0].Name)

	folders, err := b.ListFolders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Camera", folders[0].Name)
}

func TestImportFolder(t *testing.T) {
	backend := &fakeBackend{}
	b := testBridge(backend, connectedSession(), &fakeLister{})

	folder, err := b.ImportFolder(context.Background(), FolderRef{ID: "d1", Name: "Camera"}, "1")
	require.NoError(t, err)
	assert.Equal(t, shared.ID("30"), folder.ID)
	assert.Equal(t, shared.SyncFolder{Name: "Camera", DriveFolderID: "d1", Parent: "1"}, backend.folders[0])

	require.NoError(t, b.SaveDriveToken(context.Background(), "code"))
	assert.Equal(t, []string{"code"}, backend.codes)
}

func TestExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.FormValue("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token": "fresh", "token_type": "Bearer", "expires_in": 3600}`)
	}))
	defer server.Close()

	s := connectedSession()
	b := testBridge(&fakeBackend{}, s, &fakeLister{})
	b.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:   server.URL + "/auth",
		TokenURL:  server.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}

	token, err := b.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token.AccessToken)
	assert.Equal(t, "fresh", s.DriveToken)

	url := b.AuthCodeURL("state")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "prompt=consent")
}

func TestExchangeNotConfigured(t *testing.T) {
	b := NewBridge(NewOAuthConfig(config.GoogleConfig{}), &fakeBackend{}, &session.Session{}, nil)
	_, err := b.Exchange(context.Background(), "code")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDriveLister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/files"):
			q := r.URL.Query()
			assert.Equal(t, "20", q.Get("pageSize"))
			if strings.Contains(q.Get("q"), "image/") {
				assert.Equal(t, imageQuery, q.Get("q"))
				_, _ = io.WriteString(w, `{"files": [{"id": "f1", "name": "one.jpg", "thumbnailLink": "http://thumb/1"}]}`)
			} else {
				assert.Equal(t, folderQuery, q.Get("q"))
				_, _ = io.WriteString(w, `{"files": [{"id": "d1", "name": "Camera"}]}`)
			}
		case strings.HasSuffix(r.URL.Path, "/about"):
			_, _ = io.WriteString(w, `{"user": {"emailAddress": "drive@example.com"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	srv, err := drive.NewService(ctx,
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	l := &driveLister{srv: srv}

	images, err := l.ListImages(ctx, constants.DrivePageSize)
	require.NoError(t, err)
	assert.Equal(t, []ImageRef{{ID: "f1", Name: "one.jpg", ThumbnailLink: "http://thumb/1"}}, images)

	folders, err := l.ListFolders(ctx, constants.DrivePageSize)
	require.NoError(t, err)
	assert.Equal(t, []FolderRef{{ID: "d1", Name: "Camera"}}, folders)

	email, err := l.Email(ctx)
	require.NoError(t, err)
	assert.Equal(t, "drive@example.com", email)
}
