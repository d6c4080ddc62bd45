package download

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultVideoExt = "mp4"
	extTemplate     = "%(ext)s"
	titleTemplate   = "%(title)s"
)

// Options is the option set handed to yt-dlp for one invocation: format
// selector, output template and post-processing directives.
type Options struct {
	Format         string
	OutputTemplate string
	Cookies        string
	Proxy          string
	NoPlaylist     bool

	// Audio extraction post-processing.
	ExtractAudio bool
	AudioFormat  string
	AudioQuality string

	// Container for merged video streams, when explicitly requested.
	MergeOutputFormat string
}

// formatSelector builds the yt-dlp format query. Numeric qualities request
// the best stream at or below the target height with a fallback to
// unrestricted best.
func formatSelector(quality string, audioOnly bool) string {
	if audioOnly {
		return "bestaudio/best"
	}
	if quality == QualityBest {
		return "bestvideo+bestaudio/best"
	}
	height, err := strconv.Atoi(quality)
	if err != nil {
		return "bestvideo+bestaudio/best"
	}
	return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]/best", height, height)
}

// outputTemplate names the downloaded file. A custom filename is stripped of
// any extension and templated with the eventual one; otherwise the title
// template applies.
func outputTemplate(outputDir, filename string) string {
	if filename != "" {
		base := strings.TrimSuffix(filename, filepath.Ext(filename))
		return filepath.Join(outputDir, base+"."+extTemplate)
	}
	return filepath.Join(outputDir, titleTemplate+"."+extTemplate)
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// finalPath computes where the finished file ends up. An explicit format
// takes precedence over the extension the library reported, which takes
// precedence over the per-mode default.
func finalPath(req Request, meta *Metadata, predicted, defaultAudioFormat string) string {
	if req.Filename != "" {
		base := strings.TrimSuffix(req.Filename, filepath.Ext(req.Filename))
		ext := req.Format
		if ext == "" {
			switch {
			case req.AudioOnly:
				ext = defaultAudioFormat
			case meta != nil && meta.Ext != "":
				ext = meta.Ext
			default:
				ext = defaultVideoExt
			}
		}
		return filepath.Join(req.OutputDir, base+"."+ext)
	}

	path := predicted
	if path == "" && meta != nil {
		ext := meta.Ext
		if ext == "" {
			ext = defaultVideoExt
		}
		path = filepath.Join(req.OutputDir, meta.Title+"."+ext)
	}

	switch {
	case req.AudioOnly:
		ext := req.Format
		if ext == "" {
			ext = defaultAudioFormat
		}
		path = replaceExt(path, ext)
	case req.Format != "":
		path = replaceExt(path, req.Format)
	}
	return path
}
