package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	HTTP_PROXY              = "http.proxy"
	DOWNLOADS_QUALITY       = "downloads.quality"
	DOWNLOADS_OUTPUT_DIR    = "downloads.output_dir"
	DOWNLOADS_AUDIO_FORMAT  = "downloads.audio_format"
	DOWNLOADS_AUDIO_QUALITY = "downloads.audio_quality"
	YTDLP_AUTO_INSTALL      = "ytdlp.auto_install"
	YTDLP_NO_PLAYLIST       = "ytdlp.no_playlist"
	LOGGING_LEVEL           = "logging.level"
	LOGGING_WRITE_IN_FILE   = "logging.write_in_file"
	LOGGING_FILE_PATH       = "logging.file_path"
)

type Config struct {
	k *koanf.Koanf
}

// Load builds the configuration from defaults, an optional TOML file and
// VIDGRAB_-prefixed environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		HTTP_PROXY:              "",
		DOWNLOADS_QUALITY:       "best",
		DOWNLOADS_OUTPUT_DIR:    ".",
		DOWNLOADS_AUDIO_FORMAT:  "mp3",
		DOWNLOADS_AUDIO_QUALITY: "192",
		YTDLP_AUTO_INSTALL:      false,
		YTDLP_NO_PLAYLIST:       true,
		LOGGING_LEVEL:           "info",
		LOGGING_WRITE_IN_FILE:   false,
		LOGGING_FILE_PATH:       "vidgrab.log",
	}

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// VIDGRAB_LOGGING__LEVEL=debug maps to logging.level; a double
	// underscore separates sections so keys like output_dir stay intact.
	err := k.Load(env.Provider("VIDGRAB_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "VIDGRAB_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}

	return &Config{k: k}, nil
}

func (c *Config) Log() LoggingConfig {
	cfg := LoggingConfig{}
	if err := c.k.Unmarshal("logging", &cfg); err != nil {
		return LoggingConfig{LogLevel: "info"}
	}
	return cfg
}

func (c *Config) HTTP() HTTPConfig {
	return HTTPConfig{Proxy: c.k.String(HTTP_PROXY)}
}

func (c *Config) Downloads() DownloadsConfig {
	cfg := DownloadsConfig{}
	if err := c.k.Unmarshal("downloads", &cfg); err != nil {
		return DownloadsConfig{Quality: "best", OutputDir: ".", AudioFormat: "mp3", AudioQuality: "192"}
	}
	return cfg
}

func (c *Config) Ytdlp() YtdlpConfig {
	cfg := YtdlpConfig{}
	if err := c.k.Unmarshal("ytdlp", &cfg); err != nil {
		return YtdlpConfig{NoPlaylist: true}
	}
	return cfg
}
