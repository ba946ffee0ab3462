package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DataDir)
	assert.NotEmpty(t, cfg.MediaDir)
	assert.NotEmpty(t, cfg.UploadsDir)
	assert.Equal(t, "http://localhost:8080", cfg.MediaBaseURL)
	assert.Empty(t, cfg.Drive.AccessToken)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
media_base_url = "https://cdn.press.test"

[drive]
access_token = "ya29.token"
page_size = 25
`), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.press.test", cfg.MediaBaseURL)
	assert.Equal(t, "ya29.token", cfg.Drive.AccessToken)
	assert.Equal(t, 25, cfg.Drive.PageSize)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0600))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := &Config{
		DataDir:      "/var/lib/curata",
		MediaDir:     "/var/lib/curata/media",
		MediaBaseURL: "https://cdn.press.test",
		UploadsDir:   "/srv/uploads",
		Drive:        DriveConfig{AccessToken: "ya29.token", PageSize: 50},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()

	require.NoError(t, err)
	assert.Contains(t, path, ".curata")
	assert.Contains(t, path, "config.toml")
}
