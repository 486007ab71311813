package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"youtube_api_key_file = \"/etc/keys/yt\"\nverbose = true\n",
	), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/keys/yt", cfg.YouTubeAPIKeyFile)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultConfig().DetectLanguageKeyFile, cfg.DetectLanguageKeyFile,
		"unset fields keep their defaults")
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Config{
		YouTubeAPIKeyFile:     "/keys/yt",
		DetectLanguageKeyFile: "/keys/dl",
		ClientSecretFile:      "/keys/secret.json",
		Verbose:               true,
	}
	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
