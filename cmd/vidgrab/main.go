package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vidgrab/vidgrab/internal/app"
	"github.com/vidgrab/vidgrab/internal/download"
	"github.com/vidgrab/vidgrab/internal/platform"
)

var (
	version   string
	buildTime string
)

func main() {
	var (
		platformName string
		link         string
		quality      string
		output       string
		audioOnly    bool
		filename     string
		cookies      string
		format       string
		configPath   string
		showVersion  bool
	)

	flag.StringVar(&platformName, "platform", "", "Platform name ("+strings.Join(platform.Names(), ", ")+" or x)")
	flag.StringVar(&link, "link", "", "Video URL to download")
	flag.StringVar(&quality, "quality", "", "Video quality ("+strings.Join(download.Qualities, ", ")+") (default best)")
	flag.StringVar(&output, "output", "", "Output directory (default current directory)")
	flag.BoolVar(&audioOnly, "audio-only", false, "Download audio only")
	flag.StringVar(&filename, "filename", "", "Custom output filename, extension is added automatically")
	flag.StringVar(&cookies, "cookies", "", "Path to a cookies file for authentication")
	flag.StringVar(&format, "format", "", "Output format (e.g. mp4, webm, mkv for video; mp3, m4a, opus for audio)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: vidgrab [options]\n\n")
		fmt.Fprintf(out, "Download videos from YouTube, Instagram, and Twitter/X via yt-dlp.\n\n")
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  vidgrab --platform youtube --link \"https://youtube.com/watch?v=...\" --quality 720\n")
		fmt.Fprintf(out, "  vidgrab --platform instagram --link \"https://instagram.com/p/...\" --output ./downloads\n")
		fmt.Fprintf(out, "  vidgrab --platform x --link \"https://x.com/.../status/...\" --audio-only --format m4a\n")
		fmt.Fprintf(out, "  vidgrab --platform youtube --link \"https://youtu.be/...\" --filename my_video --format webm\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("vidgrab %s (built at %s)\n", version, buildTime)
		return
	}

	if platformName == "" || link == "" {
		fmt.Fprintln(os.Stderr, "Error: --platform and --link are required")
		flag.Usage()
		os.Exit(1)
	}

	application, err := app.New(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	defaults := application.Downloads()
	if quality == "" {
		quality = defaults.Quality
	}
	if output == "" {
		output = defaults.OutputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := application.Run(ctx, download.Params{
		Platform:  platformName,
		URL:       link,
		Quality:   quality,
		OutputDir: output,
		AudioOnly: audioOnly,
		Filename:  filename,
		Cookies:   cookies,
		Format:    format,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Download cancelled")
		} else {
			application.Logger.WithError(err).Error("Download failed")
		}
		os.Exit(1)
	}

	fmt.Println(path)
}
