package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/shared/constants"
)

func tempPaths(t *testing.T) Paths {
	t.Setenv(constants.EnvConfigDir, filepath.Join(t.TempDir(), "photofolio"))
	paths, err := SetupConfigDir()
	require.NoError(t, err)
	return paths
}

func TestReadConfig(t *testing.T) {
	paths := tempPaths(t)

	config, err := ReadConfig(paths)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultServer, config.Server)
	assert.Equal(t, "table", config.DefaultView)
	assert.Equal(t, constants.MaxImageSize, config.MaxUploadBytes)
	assert.Equal(t, filepath.Join(paths.Dir(), logFileName), config.LogFile)
	assert.Equal(t, "http://localhost", config.Google.RedirectURL)

	_, err = os.Stat(filepath.Join(paths.Dir(), configFileName))
	assert.NoError(t, err)
}

func TestEnvOverride(t *testing.T) {
	paths := tempPaths(t)
	t.Setenv("PHOTOFOLIO_API_URL", "https://photos.example.com/api/")
	t.Setenv("PHOTOFOLIO_GOOGLE_CLIENT_ID", "client-id")

	config, err := ReadConfig(paths)
	require.NoError(t, err)
	assert.Equal(t, "https://photos.example.com/api", config.Server)
	assert.Equal(t, "client-id", config.Google.ClientID)
}

func TestSaveConfig(t *testing.T) {
	paths := tempPaths(t)

	config, err := ReadConfig(paths)
	require.NoError(t, err)

	config.Server = "http://10.0.0.2:8000/api"
	config.DefaultView = "tree"
	require.NoError(t, paths.Save(config))

	reread, err := ReadConfig(paths)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8000/api", reread.Server)
	assert.Equal(t, "tree", reread.DefaultView)
	assert.Equal(t, config.LogFile, reread.LogFile)
}
