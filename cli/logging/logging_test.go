package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	file := filepath.Join(t.TempDir(), "photofolio.log")

	log, err := New(file, "debug")
	require.NoError(t, err)

	log.Debug("folder selected")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "folder selected")
}

func TestInvalidLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "photofolio.log")

	log, err := New(file, "loud")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
