package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	downloads := cfg.Downloads()
	assert.Equal(t, "best", downloads.Quality)
	assert.Equal(t, ".", downloads.OutputDir)
	assert.Equal(t, "mp3", downloads.AudioFormat)
	assert.Equal(t, "192", downloads.AudioQuality)

	ytdlp := cfg.Ytdlp()
	assert.False(t, ytdlp.AutoInstall)
	assert.True(t, ytdlp.NoPlaylist)

	assert.Equal(t, "info", cfg.Log().Level())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[downloads]
quality = "480"
output_dir = "/tmp/videos"

[logging]
level = "DEBUG"

[ytdlp]
auto_install = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "480", cfg.Downloads().Quality)
	assert.Equal(t, "/tmp/videos", cfg.Downloads().OutputDir)
	assert.Equal(t, "debug", cfg.Log().Level())
	assert.True(t, cfg.Ytdlp().AutoInstall)
	// untouched keys keep their defaults
	assert.Equal(t, "mp3", cfg.Downloads().AudioFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VIDGRAB_DOWNLOADS__QUALITY", "720")
	t.Setenv("VIDGRAB_LOGGING__LEVEL", "trace")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "720", cfg.Downloads().Quality)
	assert.Equal(t, "trace", cfg.Log().Level())
}

func TestHTTPConfig_GetProxy(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		t.Setenv("HTTPS_PROXY", "http://env:3128")
		cfg := HTTPConfig{Proxy: "http://explicit:8080"}
		assert.Equal(t, "http://explicit:8080", cfg.GetProxy())
	})

	t.Run("falls back to environment", func(t *testing.T) {
		t.Setenv("HTTPS_PROXY", "http://env:3128")
		assert.Equal(t, "http://env:3128", HTTPConfig{}.GetProxy())
	})
}
