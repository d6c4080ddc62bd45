package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidgrab/vidgrab/internal/config"
	"github.com/vidgrab/vidgrab/internal/download"
	"github.com/vidgrab/vidgrab/internal/logger"
)

// Application wires config, logging and the download service for one
// invocation. The yt-dlp binary is not touched until Run.
type Application struct {
	Logger  logger.Logger
	cfg     *config.Config
	service *download.Service
}

func New(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Log()
	l := logger.NewLogrusLogger(logger.Options{
		Level:       logCfg.Level(),
		WriteInFile: logCfg.WriteInFile,
		FilePath:    logCfg.FilePath,
	}).WithField("run_id", uuid.NewString())

	progress := download.NewConsoleProgress(l)
	extractor := download.NewYtdlpExtractor(cfg.Ytdlp(), progress)

	downloads := cfg.Downloads()
	service := download.NewService(l, extractor, download.Config{
		Proxy:              cfg.HTTP().GetProxy(),
		NoPlaylist:         cfg.Ytdlp().NoPlaylist,
		DefaultAudioFormat: downloads.AudioFormat,
		AudioQuality:       downloads.AudioQuality,
	})

	return &Application{
		Logger:  l,
		cfg:     cfg,
		service: service,
	}, nil
}

// Downloads exposes configured defaults for CLI flags left unset.
func (a *Application) Downloads() config.DownloadsConfig {
	return a.cfg.Downloads()
}

// Run validates the parameters and performs the download, returning the
// absolute path of the resulting file.
func (a *Application) Run(ctx context.Context, params download.Params) (string, error) {
	req, err := download.NewRequest(params, a.Logger)
	if err != nil {
		return "", err
	}

	a.Logger.WithFields(logger.Fields{
		"platform":   req.Platform.String(),
		"quality":    req.Quality,
		"output":     req.OutputDir,
		"audio_only": req.AudioOnly,
	}).Info("Starting download")

	return a.service.Download(ctx, req)
}
