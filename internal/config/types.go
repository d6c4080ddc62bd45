package config

import (
	"os"
	"strings"
)

type LoggingConfig struct {
	LogLevel    string `koanf:"level"`
	WriteInFile bool   `koanf:"write_in_file"`
	FilePath    string `koanf:"file_path"`
}

func (c LoggingConfig) Level() string {
	return strings.ToLower(c.LogLevel)
}

type HTTPConfig struct {
	Proxy string `koanf:"proxy"`
}

// GetProxy falls back to the conventional proxy environment variables when
// no proxy is configured explicitly.
func (c HTTPConfig) GetProxy() string {
	if c.Proxy != "" {
		return c.Proxy
	}
	for _, key := range []string{"HTTPS_PROXY", "https_proxy", "HTTP_PROXY", "http_proxy"} {
		if proxyURL := os.Getenv(key); proxyURL != "" {
			return proxyURL
		}
	}
	return ""
}

// DownloadsConfig holds defaults applied when the matching CLI flag is left
// at its zero value.
type DownloadsConfig struct {
	Quality      string `koanf:"quality"`
	OutputDir    string `koanf:"output_dir"`
	AudioFormat  string `koanf:"audio_format"`
	AudioQuality string `koanf:"audio_quality"`
}

type YtdlpConfig struct {
	// AutoInstall lets go-ytdlp download a pinned yt-dlp build when the
	// binary is not found on PATH.
	AutoInstall bool `koanf:"auto_install"`
	NoPlaylist  bool `koanf:"no_playlist"`
}
