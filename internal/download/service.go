package download

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/vidgrab/vidgrab/internal/logger"
)

type Config struct {
	Proxy              string
	NoPlaylist         bool
	DefaultAudioFormat string
	AudioQuality       string
}

// Service is the invocation wrapper: it probes metadata, runs the download
// and derives the final file path. Errors are returned to the caller; the
// CLI layer decides whether they terminate the process.
type Service struct {
	cfg       Config
	logger    logger.Logger
	extractor Extractor
}

func NewService(l logger.Logger, extractor Extractor, cfg Config) *Service {
	if cfg.DefaultAudioFormat == "" {
		cfg.DefaultAudioFormat = "mp3"
	}
	if cfg.AudioQuality == "" {
		cfg.AudioQuality = "192"
	}
	return &Service{
		cfg:       cfg,
		logger:    l,
		extractor: extractor,
	}
}

// buildOptions maps a validated request onto the yt-dlp option set.
func (s *Service) buildOptions(req Request) Options {
	opts := Options{
		Format:         formatSelector(req.Quality, req.AudioOnly),
		OutputTemplate: outputTemplate(req.OutputDir, req.Filename),
		Cookies:        req.Cookies,
		Proxy:          s.cfg.Proxy,
		NoPlaylist:     s.cfg.NoPlaylist,
	}

	if req.AudioOnly {
		opts.ExtractAudio = true
		opts.AudioFormat = req.Format
		if opts.AudioFormat == "" {
			opts.AudioFormat = s.cfg.DefaultAudioFormat
		}
		opts.AudioQuality = s.cfg.AudioQuality
	} else if req.Format != "" {
		opts.MergeOutputFormat = req.Format
	}

	return opts
}

// Download runs one blocking download and returns the absolute path of the
// resulting file. Nothing is retried.
func (s *Service) Download(ctx context.Context, req Request) (string, error) {
	opts := s.buildOptions(req)

	if err := s.extractor.Resolve(ctx); err != nil {
		return "", errors.Join(ErrToolUnavailable, err)
	}

	s.logger.WithFields(logger.Fields{
		"format":   opts.Format,
		"template": opts.OutputTemplate,
	}).Debug("Resolved yt-dlp options")

	meta, err := s.extractor.Probe(ctx, req.URL, opts)
	if err != nil {
		return "", errors.Join(ErrExtraction, err)
	}

	predicted := ""
	if req.Filename == "" {
		predicted, err = s.extractor.PredictFilename(ctx, req.URL, opts)
		if err != nil {
			return "", errors.Join(ErrExtraction, err)
		}
	}

	if err := s.extractor.Download(ctx, req.URL, opts); err != nil {
		return "", errors.Join(ErrDownload, err)
	}

	path := finalPath(req, meta, predicted, s.cfg.DefaultAudioFormat)
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	s.logger.WithFields(logger.Fields{
		"title": meta.Title,
		"path":  abs,
	}).Info("Download finished")

	return abs, nil
}
