package download

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidgrab/vidgrab/internal/platform"
)

func TestFormatSelector(t *testing.T) {
	t.Run("best", func(t *testing.T) {
		assert.Equal(t, "bestvideo+bestaudio/best", formatSelector("best", false))
	})

	t.Run("numeric quality caps the height", func(t *testing.T) {
		assert.Equal(t,
			"bestvideo[height<=720]+bestaudio/best[height<=720]/best",
			formatSelector("720", false))
		assert.Equal(t,
			"bestvideo[height<=360]+bestaudio/best[height<=360]/best",
			formatSelector("360", false))
	})

	t.Run("audio only wins over quality", func(t *testing.T) {
		assert.Equal(t, "bestaudio/best", formatSelector("720", true))
		assert.Equal(t, "bestaudio/best", formatSelector("best", true))
	})
}

func TestOutputTemplate(t *testing.T) {
	t.Run("default uses title", func(t *testing.T) {
		assert.Equal(t,
			filepath.Join("out", "%(title)s.%(ext)s"),
			outputTemplate("./out", ""))
	})

	t.Run("custom filename strips extension", func(t *testing.T) {
		assert.Equal(t,
			filepath.Join("out", "clip.%(ext)s"),
			outputTemplate("out", "clip.mp4"))
		assert.Equal(t,
			filepath.Join("out", "clip.%(ext)s"),
			outputTemplate("out", "clip"))
	})
}

func TestFinalPath(t *testing.T) {
	meta := &Metadata{ID: "abc", Title: "Test Video", Ext: "mkv"}

	t.Run("custom filename with explicit format ignores reported ext", func(t *testing.T) {
		req := Request{
			Platform:  platform.YouTube,
			OutputDir: "out",
			Filename:  "clip",
			Format:    "webm",
		}
		assert.Equal(t, filepath.Join("out", "clip.webm"), finalPath(req, meta, "", "mp3"))
	})

	t.Run("custom filename falls back to reported ext", func(t *testing.T) {
		req := Request{OutputDir: "out", Filename: "clip.avi"}
		assert.Equal(t, filepath.Join("out", "clip.mkv"), finalPath(req, meta, "", "mp3"))
	})

	t.Run("custom filename audio only defaults to audio format", func(t *testing.T) {
		req := Request{OutputDir: "out", Filename: "clip", AudioOnly: true}
		assert.Equal(t, filepath.Join("out", "clip.mp3"), finalPath(req, meta, "", "mp3"))
	})

	t.Run("predicted path is kept as is", func(t *testing.T) {
		req := Request{OutputDir: "out"}
		assert.Equal(t,
			filepath.Join("out", "Test Video.mkv"),
			finalPath(req, meta, filepath.Join("out", "Test Video.mkv"), "mp3"))
	})

	t.Run("predicted path with explicit format swaps extension", func(t *testing.T) {
		req := Request{OutputDir: "out", Format: "webm"}
		assert.Equal(t,
			filepath.Join("out", "Test Video.webm"),
			finalPath(req, meta, filepath.Join("out", "Test Video.mkv"), "mp3"))
	})

	t.Run("predicted path audio only swaps to audio format", func(t *testing.T) {
		req := Request{OutputDir: "out", AudioOnly: true, Format: "m4a"}
		assert.Equal(t,
			filepath.Join("out", "Test Video.m4a"),
			finalPath(req, meta, filepath.Join("out", "Test Video.webm"), "mp3"))
	})

	t.Run("no prediction falls back to title", func(t *testing.T) {
		req := Request{OutputDir: "out"}
		assert.Equal(t,
			filepath.Join("out", "Test Video.mkv"),
			finalPath(req, meta, "", "mp3"))
	})
}
