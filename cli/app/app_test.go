package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/shared"
	"photofolio/shared/constants"
)

func testEnv(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var login shared.Login
		require.NoError(t, json.NewDecoder(r.Body).Decode(&login))
		assert.Equal(t, "mai@example.com", login.Email)
		_, _ = io.WriteString(w, `{"token": "t1", "user": {"id": 3, "username": "mai"}}`)
	})
	mux.HandleFunc("GET /api/user/3/home/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"folders": [{"id": 1, "name": "Trips", "parent": null}], "images": []}`)
	})
	mux.HandleFunc("GET /api/user/3/shared/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"shared_folders": []}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	t.Setenv(constants.EnvConfigDir, t.TempDir())
	t.Setenv(constants.EnvServer, server.URL+"/api/")
	t.Setenv(constants.EnvCLIKey, "")
	return server
}

func TestSessionLifecycle(t *testing.T) {
	testEnv(t)
	ctx := context.Background()

	a, err := New()
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.Authenticated())
	require.NoError(t, a.Login(ctx, " Mai@Example.com ", "pw"))
	assert.True(t, a.Authenticated())
	assert.Equal(t, "mai@example.com", a.Session.User.Email)

	require.NoError(t, a.Library.Load(ctx))
	assert.Equal(t, 1, a.Library.Tree.Len())

	// a second process picks up the persisted session
	b, err := New()
	require.NoError(t, err)
	defer b.Close()
	assert.True(t, b.Authenticated())
	assert.Equal(t, shared.ID("3"), b.Session.UserID())
	assert.Equal(t, "t1", b.Session.Token)

	require.NoError(t, b.Logout())
	assert.False(t, b.Authenticated())
	assert.Equal(t, 0, b.Library.Tree.Len())

	c, err := New()
	require.NoError(t, err)
	defer c.Close()
	assert.False(t, c.Authenticated())
}

func TestSealedSessionDiscarded(t *testing.T) {
	testEnv(t)
	t.Setenv(constants.EnvCLIKey, "first-key")

	a, err := New()
	require.NoError(t, err)
	defer a.Close()
	require.NoError(t, a.Login(context.Background(), "mai@example.com", "pw"))

	t.Setenv(constants.EnvCLIKey, "other-key")
	b, err := New()
	require.NoError(t, err)
	defer b.Close()
	assert.False(t, b.Authenticated())
}

func TestServerFromEnvironment(t *testing.T) {
	server := testEnv(t)

	a, err := New()
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, server.URL+"/api", a.Config.Server)
	assert.Equal(t, server.URL+"/api", a.API.Server)
}
