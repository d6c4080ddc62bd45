package download

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInvalidURL is returned when the link lacks an http(s) scheme.
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrInvalidQuality is returned when the quality is outside the fixed set.
	ErrInvalidQuality = errors.New("invalid quality")

	// ErrCookiesNotFound is returned when the supplied cookies path does not
	// exist on disk.
	ErrCookiesNotFound = fmt.Errorf("cookies file not found: %w", fs.ErrNotExist)

	// ErrExtraction is returned when yt-dlp fails to resolve the URL into
	// media metadata.
	ErrExtraction = errors.New("extraction failed")

	// ErrDownload is returned when the transfer itself fails.
	ErrDownload = errors.New("download failed")

	// ErrToolUnavailable is returned when the yt-dlp binary cannot be
	// resolved on the download path.
	ErrToolUnavailable = errors.New("yt-dlp is not available")

	// ErrNoMetadata is returned when the probe yields no entries.
	ErrNoMetadata = errors.New("no media metadata available")
)
