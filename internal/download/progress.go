package download

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/lrstanley/go-ytdlp"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/vidgrab/vidgrab/internal/logger"
)

// ConsoleProgress renders download progress as a single rewritten line when
// stderr is a terminal, and as debug log entries otherwise.
type ConsoleProgress struct {
	out    io.Writer
	tty    bool
	logger logger.Logger
}

func NewConsoleProgress(l logger.Logger) *ConsoleProgress {
	return &ConsoleProgress{
		out:    colorable.NewColorableStderr(),
		tty:    isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
		logger: l,
	}
}

func (p *ConsoleProgress) Update(update ytdlp.ProgressUpdate) {
	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		if p.tty {
			fmt.Fprintf(p.out, "\rDownloading: %5.1f%% (%s / %s)",
				update.Percent(),
				humanize.Bytes(uint64(update.DownloadedBytes)),
				humanize.Bytes(uint64(update.TotalBytes)))
			return
		}
		p.logger.WithFields(logger.Fields{
			"percent":    fmt.Sprintf("%.1f", update.Percent()),
			"downloaded": update.DownloadedBytes,
			"total":      update.TotalBytes,
		}).Debug("Downloading")
	case ytdlp.ProgressStatusFinished:
		if p.tty {
			fmt.Fprintf(p.out, "\rDownload complete%-20s\n", "")
			return
		}
		p.logger.Info("Download complete")
	}
}
