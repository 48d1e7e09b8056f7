package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"ytfetch/internal/job"
	"ytfetch/internal/logging"
)

const (
	defaultExecutable = "yt-dlp"
	progressInterval  = 500 * time.Millisecond
)

// Options configures the yt-dlp adapter.
type Options struct {
	// Executable is the yt-dlp name or path; empty means "yt-dlp" on PATH.
	Executable string
	// FFmpegLocation points yt-dlp at a specific ffmpeg binary. Empty means PATH.
	FFmpegLocation string
	// Environ is passed to yt-dlp as its environment. Nil means os.Environ().
	Environ  []string
	Progress *ProgressReporter
	Logger   *slog.Logger
}

// YTDLP runs job specifications through the yt-dlp executable.
type YTDLP struct {
	executable     string
	ffmpegLocation string
	environ        []string
	progress       *ProgressReporter
	logger         *slog.Logger
}

// NewYTDLP constructs the adapter.
func NewYTDLP(opts Options) *YTDLP {
	executable := strings.TrimSpace(opts.Executable)
	if executable == "" {
		executable = defaultExecutable
	}
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	return &YTDLP{
		executable:     executable,
		ffmpegLocation: strings.TrimSpace(opts.FFmpegLocation),
		environ:        environ,
		progress:       opts.Progress,
		logger:         logging.NewComponentLogger(opts.Logger, "engine"),
	}
}

// Download fetches url according to spec and blocks until yt-dlp exits.
// A non-zero exit is returned as *DownloadError.
func (e *YTDLP) Download(ctx context.Context, url string, spec job.Spec) error {
	cmd := e.command(spec)
	e.progress.Reset()

	e.logger.Debug("invoking yt-dlp", slog.String("command", spec.CommandLine(e.executable, url, e.ffmpegArgs()...)))

	result, err := cmd.Run(ctx, url)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("yt-dlp interrupted: %w", ctxErr)
	}

	var exitErr *ytdlp.ErrExitCode
	if errors.As(err, &exitErr) {
		dlErr := &DownloadError{Message: exitErr.Error()}
		if result != nil {
			dlErr.ExitCode = result.ExitCode
			if line := lastErrorLine(result.Stderr); line != "" {
				dlErr.Message = line
			}
		}
		return dlErr
	}
	return fmt.Errorf("run yt-dlp: %w", err)
}

func (e *YTDLP) command(spec job.Spec) *ytdlp.Command {
	cmd := ytdlp.New().
		SetExecutable(e.executable).
		Output(spec.OutputTemplate).
		Format(spec.FormatSelector).
		Downloader(spec.Delegation.Binary).
		DownloaderArgs(spec.DownloaderArgs()).
		Retries(strconv.Itoa(spec.Retries)).
		DownloadArchive(spec.ArchivePath)

	if step, ok := spec.AudioExtraction(); ok {
		cmd.ExtractAudio().
			AudioFormat(step.Codec).
			AudioQuality(step.Quality)
	}
	if container := spec.MergeContainer(); container != "" {
		cmd.MergeOutputFormat(container)
	}
	if spec.IgnoreErrors {
		cmd.IgnoreErrors()
	}
	if e.ffmpegLocation != "" {
		cmd.FFmpegLocation(e.ffmpegLocation)
	}
	inheritEnv(cmd, e.environ)

	if e.progress != nil {
		cmd.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			item := ""
			if update.Info != nil && update.Info.Title != nil {
				item = *update.Info.Title
			}
			e.progress.Update(Progress{
				Item:       item,
				Downloaded: uint64(update.DownloadedBytes),
				Total:      uint64(update.TotalBytes),
			})
		})
	}
	return cmd
}

func (e *YTDLP) ffmpegArgs() []string {
	if e.ffmpegLocation == "" {
		return nil
	}
	return []string{"--ffmpeg-location", e.ffmpegLocation}
}

// inheritEnv copies environ onto cmd. go-ytdlp otherwise starts yt-dlp with
// nothing but its rewritten PATH, dropping HOME, locale and proxy settings.
func inheritEnv(cmd *ytdlp.Command, environ []string) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		cmd.SetEnvVar(key, value)
	}
}
