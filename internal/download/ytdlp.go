package download

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/vidgrab/vidgrab/internal/config"
)

// Metadata is the slice of the extracted info this tool actually needs.
type Metadata struct {
	ID    string
	Title string
	Ext   string
}

// Extractor is the boundary to the media-extraction tool. Implementations
// must be safe for a single synchronous invocation; no call performs retries.
type Extractor interface {
	// Resolve locates the yt-dlp binary. It is called lazily so that help
	// output and validation work without the tool installed.
	Resolve(ctx context.Context) error
	// Probe resolves metadata for the URL without downloading anything.
	Probe(ctx context.Context, url string, opts Options) (*Metadata, error)
	// PredictFilename asks the tool which file the output template resolves to.
	PredictFilename(ctx context.Context, url string, opts Options) (string, error)
	// Download performs the transfer with the given options.
	Download(ctx context.Context, url string, opts Options) error
}

type YtdlpExtractor struct {
	autoInstall bool
	progress    *ConsoleProgress

	resolveOnce sync.Once
	resolveErr  error
}

func NewYtdlpExtractor(cfg config.YtdlpConfig, progress *ConsoleProgress) *YtdlpExtractor {
	return &YtdlpExtractor{
		autoInstall: cfg.AutoInstall,
		progress:    progress,
	}
}

func (e *YtdlpExtractor) Resolve(ctx context.Context) error {
	e.resolveOnce.Do(func() {
		_, e.resolveErr = ytdlp.Install(ctx, &ytdlp.InstallOptions{
			DisableDownload: !e.autoInstall,
		})
	})
	return e.resolveErr
}

// command translates Options into the fluent yt-dlp invocation.
func (e *YtdlpExtractor) command(opts Options) *ytdlp.Command {
	dl := ytdlp.New()

	if opts.Format != "" {
		dl = dl.Format(opts.Format)
	}
	if opts.OutputTemplate != "" {
		dl = dl.Output(opts.OutputTemplate)
	}
	if opts.Cookies != "" {
		dl = dl.Cookies(opts.Cookies)
	}
	if opts.Proxy != "" {
		dl = dl.Proxy(opts.Proxy)
	}
	if opts.NoPlaylist {
		dl = dl.NoPlaylist()
	}
	if opts.ExtractAudio {
		dl = dl.ExtractAudio().
			AudioFormat(opts.AudioFormat).
			AudioQuality(opts.AudioQuality)
	}
	if opts.MergeOutputFormat != "" {
		dl = dl.MergeOutputFormat(opts.MergeOutputFormat)
	}

	return dl
}

func (e *YtdlpExtractor) Probe(ctx context.Context, url string, opts Options) (*Metadata, error) {
	result, err := e.command(opts).
		SkipDownload().
		PrintJSON().
		Run(ctx, url)
	if err != nil {
		return nil, err
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, err
	}
	if len(info) == 0 || info[0] == nil {
		return nil, ErrNoMetadata
	}

	meta := &Metadata{}
	file := info[0]
	meta.ID = file.ID
	if file.Title != nil {
		meta.Title = *file.Title
	}
	meta.Ext = file.Extension
	return meta, nil
}

func (e *YtdlpExtractor) PredictFilename(ctx context.Context, url string, opts Options) (string, error) {
	result, err := e.command(opts).
		SkipDownload().
		Print("filename").
		Run(ctx, url)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

func (e *YtdlpExtractor) Download(ctx context.Context, url string, opts Options) error {
	dl := e.command(opts)
	if e.progress != nil {
		dl = dl.ProgressFunc(250*time.Millisecond, e.progress.Update)
	}
	_, err := dl.Run(ctx, url)
	return err
}
