// Package file provides file-based configuration for the playlist engine:
// a TOML config file naming the credential files, and key-file loaders
// that pick up key rotations without a restart.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigName is the config file name inside the config directory.
const DefaultConfigName = "config.toml"

// Config holds the engine's file-based settings.
type Config struct {
	// YouTubeAPIKeyFile is the path to the file holding the
	// YouTube Data API v3 key.
	YouTubeAPIKeyFile string `toml:"youtube_api_key_file"`

	// DetectLanguageKeyFile is the path to the file holding the
	// Detect Language API key.
	DetectLanguageKeyFile string `toml:"detectlanguage_api_key_file"`

	// ClientSecretFile is the path to the OAuth client secret JSON.
	// Optional; without it only the public fetch path is available.
	ClientSecretFile string `toml:"client_secret_file"`

	// Verbose enables diagnostic logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the defaults matching the conventional ./files
// layout.
func DefaultConfig() Config {
	return Config{
		YouTubeAPIKeyFile:     "./files/youtube-api-key.txt",
		DetectLanguageKeyFile: "./files/detectlanguage-api-key.txt",
		ClientSecretFile:      "./files/client_secret.json",
	}
}

// LoadConfig reads the config file at path, filling unset fields with
// defaults. A missing file yields the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the config file, creating the directory if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
