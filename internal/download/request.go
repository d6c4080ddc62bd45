package download

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/vidgrab/vidgrab/internal/logger"
	"github.com/vidgrab/vidgrab/internal/platform"
)

const QualityBest = "best"

// Qualities is the fixed set of accepted quality selectors.
var Qualities = []string{"360", "480", "720", "1080", QualityBest}

// Params carries the raw per-invocation input before validation.
type Params struct {
	Platform  string
	URL       string
	Quality   string
	OutputDir string
	AudioOnly bool
	Filename  string
	Cookies   string
	Format    string
}

// Request is a validated download request. It lives for a single invocation
// and carries no state beyond it.
type Request struct {
	Platform  platform.Platform
	URL       string
	Quality   string
	OutputDir string
	AudioOnly bool
	Filename  string
	Cookies   string
	Format    string
}

// NewRequest validates params and normalizes them into a Request. A
// platform/URL domain mismatch is logged as a warning only, since the
// domain lists are incomplete by nature.
func NewRequest(params Params, l logger.Logger) (Request, error) {
	p, err := platform.Normalize(params.Platform)
	if err != nil {
		return Request{}, err
	}

	if !strings.HasPrefix(params.URL, "http://") && !strings.HasPrefix(params.URL, "https://") {
		return Request{}, fmt.Errorf("%w: %s", ErrInvalidURL, params.URL)
	}

	if !p.MatchesURL(params.URL) {
		l.WithFields(logger.Fields{
			"url":      params.URL,
			"platform": p.String(),
		}).Warn("URL may not match platform")
	}

	quality := params.Quality
	if quality == "" {
		quality = QualityBest
	}
	if !slices.Contains(Qualities, quality) {
		return Request{}, fmt.Errorf("%w: %q (supported: %s)", ErrInvalidQuality, quality, strings.Join(Qualities, ", "))
	}

	if params.Cookies != "" {
		info, err := os.Stat(params.Cookies)
		if err != nil || info.IsDir() {
			return Request{}, fmt.Errorf("%w: %s", ErrCookiesNotFound, params.Cookies)
		}
	}

	outputDir := params.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Request{}, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	return Request{
		Platform:  p,
		URL:       params.URL,
		Quality:   quality,
		OutputDir: outputDir,
		AudioOnly: params.AudioOnly,
		Filename:  params.Filename,
		Cookies:   params.Cookies,
		Format:    params.Format,
	}, nil
}
