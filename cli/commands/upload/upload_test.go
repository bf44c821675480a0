package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/cli/library"
	"photofolio/cli/library/librarytest"
	"photofolio/shared"
)

func writePNG(t *testing.T, dir, name string) string {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 2, 2))))
	return path
}

func TestRun(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png")
	rejected := writePNG(t, dir, "rejected.png")
	text := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(text, []byte("just text"), 0o600))

	backend := &librarytest.Backend{
		Home: shared.HomeResponse{
			Folders: []shared.Folder{{ID: "4", Name: "Beach", AllowUpload: true}},
			Images:  []shared.ImageItem{},
		},
		Reject: map[string]error{"rejected.png": errors.New("server said no")},
	}

	var out bytes.Buffer
	lib := librarytest.NewLibrary(backend)
	err := Run(context.Background(), lib, &out, []string{"4", good, rejected, text})
	require.Error(t, err)
	assert.ErrorIs(t, err, library.ErrNotAnImage)

	assert.ElementsMatch(t, []string{"good.png", "rejected.png"}, backend.Sent)
	assert.Contains(t, out.String(), "✓ good.png -> http://img.test/good.png")
	assert.Contains(t, out.String(), "✗ rejected.png: server said no")
	assert.Contains(t, out.String(), "Uploaded 1 of 3 file(s), limit 10 MiB per file")
}

func TestRunUsage(t *testing.T) {
	lib := librarytest.NewLibrary(&librarytest.Backend{})
	assert.ErrorIs(t, Run(context.Background(), lib, &bytes.Buffer{}, []string{"4"}), ErrUsage)
}
