// Package file loads pipeline configuration from a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the pipeline configuration.
type Config struct {
	// DataDir holds the catalog database. Empty means ~/.curata/data.
	DataDir string `toml:"data_dir"`

	// MediaDir receives processed images.
	MediaDir string `toml:"media_dir"`

	// MediaBaseURL prefixes public image URLs.
	MediaBaseURL string `toml:"media_base_url"`

	// UploadsDir is the hot folder watched for dropped documents.
	UploadsDir string `toml:"uploads_dir"`

	Drive DriveConfig `toml:"drive"`
}

// DriveConfig configures the shared-folder source.
type DriveConfig struct {
	// AccessToken is the OAuth access token used for Drive API calls.
	AccessToken string `toml:"access_token"`

	// PageSize overrides the listing page size when positive.
	PageSize int `toml:"page_size"`
}

// DefaultPath returns the default config file location,
// ~/.curata/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".curata", "config.toml"), nil
}

// Load reads the TOML config at path. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func defaults() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".curata")
	return &Config{
		DataDir:      filepath.Join(base, "data"),
		MediaDir:     filepath.Join(base, "media"),
		MediaBaseURL: "http://localhost:8080",
		UploadsDir:   filepath.Join(base, "uploads"),
	}
}
