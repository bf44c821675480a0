package requests

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/shared/constants"
)

func TestBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, constants.CLIUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := GetRequest(context.Background(), "abc", server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNoTokenNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a": 1}`, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	}))
	defer server.Close()

	resp, err := PostRequest(context.Background(), "", server.URL, []byte(`{"a": 1}`))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestPostMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "null", r.FormValue("folder_id"))
		assert.Equal(t, "cat.png", r.FormValue("img_name"))

		file, header, err := r.FormFile("img_file")
		require.NoError(t, err)
		defer file.Close()

		contents, _ := io.ReadAll(file)
		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "pixels", string(contents))
	}))
	defer server.Close()

	resp, err := PostMultipart(
		context.Background(),
		"abc",
		server.URL,
		map[string]string{"folder_id": "null", "img_name": "cat.png"},
		FormFile{Field: "img_file", Filename: "cat.png", Reader: strings.NewReader("pixels")})
	require.NoError(t, err)
	resp.Body.Close()
}

func TestCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DeleteRequest(ctx, "abc", server.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
