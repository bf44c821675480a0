package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/cli/session"
	"photofolio/cli/utils"
	"photofolio/shared"
)

const token = "bearer-token"

func testContext(t *testing.T, mux *http.ServeMux) *Context {
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	s := &session.Session{}
	s.Start(shared.User{ID: "5", Username: "lan", Email: "lan@example.com"}, token)
	return InitContext(server.URL+"/api", s, nil)
}

func authorized(t *testing.T, r *http.Request) {
	assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
}

func TestLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		var login shared.Login
		require.NoError(t, json.NewDecoder(r.Body).Decode(&login))
		if login.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error": "invalid credentials"}`)
			return
		}

		_, _ = io.WriteString(w, `{"token": "t1", "user": {"id": 7, "username": "a", "email": "a@b.c"}}`)
	})
	mux.HandleFunc("POST /api/auth/gg-login/", func(w http.ResponseWriter, r *http.Request) {
		var login shared.GoogleLogin
		require.NoError(t, json.NewDecoder(r.Body).Decode(&login))
		assert.Equal(t, "google-token", login.AccessToken)
		_, _ = io.WriteString(w, `{"token": "t2", "user": {"id": 8}}`)
	})

	c := testContext(t, mux)
	ctx := context.Background()

	resp, err := c.Login(ctx, shared.Login{Email: "a@b.c", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, shared.ID("7"), resp.User.ID)

	_, err = c.Login(ctx, shared.Login{Email: "a@b.c", Password: "wrong"})
	assert.True(t, utils.IsStatus(err, http.StatusUnauthorized))
	assert.ErrorContains(t, err, "invalid credentials")

	resp, err = c.GoogleLogin(ctx, "google-token")
	require.NoError(t, err)
	assert.Equal(t, "t2", resp.Token)
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		var register shared.Register
		require.NoError(t, json.NewDecoder(r.Body).Decode(&register))
		assert.Equal(t, "lan", register.Username)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"user": {"id": 9, "username": "lan", "email": "lan@x.y"}}`)
	})

	user, err := testContext(t, mux).Register(context.Background(), shared.Register{
		Username: "lan",
		Email:    "lan@x.y",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, shared.ID("9"), user.ID)
}

func TestFetchHome(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/5/home/", func(w http.ResponseWriter, r *http.Request) {
		authorized(t, r)
		_, _ = io.WriteString(w, `{
			"folders": [
				{"id": 1, "name": "trips", "parent": null},
				{"id": 2, "name": "2022", "parent": 1, "allowSync": false}
			],
			"images": [
				{"id": "a", "image_name": "beach.png", "image": "http://img/a", "folder_id": null, "created_at": "2022-05-10"}
			]
		}`)
	})

	home, err := testContext(t, mux).FetchHome(context.Background())
	require.NoError(t, err)
	require.Len(t, home.Folders, 2)
	assert.True(t, home.Folders[0].AllowSync)
	assert.False(t, home.Folders[1].AllowSync)
	assert.Equal(t, shared.ID("1"), home.Folders[1].Parent)
	require.Len(t, home.Images, 1)
	assert.True(t, home.Images[0].FolderID.IsHome())
}

func TestMalformedResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/5/home/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"folders": [{"id": 1}], "images": []}`)
	})
	mux.HandleFunc("GET /api/user/folder/3/images/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})
	mux.HandleFunc("GET /api/user/5/shared/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"shared_folders": [{"id": 4, "name": "x", "owner": {"id": 9}, "permission": "owner"}]}`)
	})

	c := testContext(t, mux)
	ctx := context.Background()

	_, err := c.FetchHome(ctx)
	assert.ErrorIs(t, err, shared.ErrMalformedResponse)

	_, err = c.FetchFolderImages(ctx, "3")
	assert.ErrorIs(t, err, shared.ErrMalformedResponse)

	_, err = c.FetchSharedFolders(ctx)
	assert.ErrorIs(t, err, shared.ErrMalformedResponse)
}

func TestNotLoggedIn(t *testing.T) {
	c := InitContext("http://127.0.0.1:1", nil, nil)

	_, err := c.FetchHome(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = c.CreateFolder(context.Background(), "a", shared.HomeID)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestFolders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/5/folder/create/", func(w http.ResponseWriter, r *http.Request) {
		authorized(t, r)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name": "new", "parent": 1, "owner": 5}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 10, "name": "new", "parent": 1, "owner_id": 5}`)
	})
	mux.HandleFunc("DELETE /api/user/5/folder/10/", func(w http.ResponseWriter, r *http.Request) {
		authorized(t, r)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /api/user/5/folder/11/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	c := testContext(t, mux)
	ctx := context.Background()

	folder, err := c.CreateFolder(ctx, "new", "1")
	require.NoError(t, err)
	assert.Equal(t, shared.ID("10"), folder.ID)
	assert.Equal(t, shared.ID("5"), folder.OwnerID)

	assert.NoError(t, c.DeleteFolder(ctx, "10"))
	assert.True(t, utils.IsStatus(c.DeleteFolder(ctx, "11"), http.StatusForbidden))
}

func TestImages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/folder/3/images/", func(w http.ResponseWriter, r *http.Request) {
		authorized(t, r)
		_, _ = io.WriteString(w, `{"images": [{"id": 1, "image_name": "a.png", "image": "http://img/1", "folder_id": 3, "created_at": "2023-01-01T10:00:00Z"}]}`)
	})
	mux.HandleFunc("DELETE /api/user/folder/3/image/1/", func(w http.ResponseWriter, r *http.Request) {
		authorized(t, r)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/user/5/upload/img/", func(w http.ResponseWriter, r *http.Request) {
		authorized(t, r)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "3", r.FormValue("folder_id"))
		assert.Equal(t, "5", r.FormValue("user_id"))
		assert.Equal(t, "b.png", r.FormValue("img_name"))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 2, "image_name": "b.png", "image": "http://img/2", "folder_id": 3, "created_at": "2024-01-01"}`)
	})

	c := testContext(t, mux)
	ctx := context.Background()

	images, err := c.FetchFolderImages(ctx, "3")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, 2023, images[0].CreatedAt.Year())

	assert.NoError(t, c.DeleteImage(ctx, "3", "1"))

	image, err := c.UploadImage(ctx, "3", "b.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, shared.ID("2"), image.ID)
}

func TestChangePermission(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/folder/4/change-permission/", func(w http.ResponseWriter, r *http.Request) {
		authorized(t, r)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{
			"allow_read": ["a@x.y", "b@x.y"],
			"allow_write": ["b@x.y"],
			"allow_delete": []
		}`, string(body))
	})

	err := testContext(t, mux).ChangePermission(context.Background(), "4", shared.PermissionSet{
		Read:   []string{"a@x.y", "b@x.y"},
		Write:  []string{"b@x.y"},
		Delete: []string{},
	})
	assert.NoError(t, err)
}

func TestSync(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/5/sync/save_drive_token/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"code": "auth-code", "userId": 5}`, string(body))
	})
	mux.HandleFunc("POST /api/user/5/sync/img/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{
			"user_id": 5,
			"drive_email": "lan@example.com",
			"img_name": "x.jpg",
			"img_id": "drive-1",
			"img_folder_id": 3,
			"sync_type": "gg_drive"
		}`, string(body))
	})
	mux.HandleFunc("POST /api/user/sync/folder/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name": "Camera", "drive_folder_id": "df", "parent": null}`, string(body))
		_, _ = io.WriteString(w, `{"id": 20, "name": "Camera", "parent": null}`)
	})

	c := testContext(t, mux)
	ctx := context.Background()

	assert.NoError(t, c.SaveDriveToken(ctx, "auth-code"))
	assert.NoError(t, c.SyncImage(ctx, shared.SyncImage{
		DriveEmail:  "lan@example.com",
		ImageName:   "x.jpg",
		ImageID:     "drive-1",
		ImageFolder: "3",
		SyncType:    "gg_drive",
	}))

	folder, err := c.SyncFolder(ctx, shared.SyncFolder{Name: "Camera", DriveFolderID: "df"})
	require.NoError(t, err)
	assert.Equal(t, shared.ID("20"), folder.ID)
}

func TestFetchImageData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /media/cat.png", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, "pixels")
	})
	mux.HandleFunc("GET /media/gone.png", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := testContext(t, mux)
	ctx := context.Background()

	data, err := c.FetchImageData(ctx, shared.ImageItem{ID: "1", URL: "/media/cat.png"})
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))

	_, err = c.FetchImageData(ctx, shared.ImageItem{ID: "2", URL: "/media/gone.png"})
	assert.True(t, utils.IsStatus(err, http.StatusNotFound))
}

func TestImageURL(t *testing.T) {
	c := &Context{Server: "http://photos.test/api"}
	assert.Equal(t, "http://photos.test/media/a.png", c.ImageURL(shared.ImageItem{URL: "/media/a.png"}))
	assert.Equal(t, "https://cdn.test/a.png", c.ImageURL(shared.ImageItem{URL: "https://cdn.test/a.png"}))
}
