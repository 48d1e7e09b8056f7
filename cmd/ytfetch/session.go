package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"ytfetch/internal/config"
	"ytfetch/internal/deps"
	"ytfetch/internal/engine"
	"ytfetch/internal/job"
	"ytfetch/internal/logging"
	"ytfetch/internal/preflight"
	"ytfetch/internal/prompt"
	"ytfetch/internal/runner"
)

// runSession checks the tools, collects the operator's answers and runs one
// download. Only missing tools, configuration errors and a cancelled context
// fail the command.
//
// Interrupts are caught only while the engine runs, so it can stop yt-dlp.
// At the prompts Ctrl-C keeps its default effect and ends the process.
func runSession(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeQuietly(closer)
	logger = logging.WithRunID(logger, logging.NewRunID())

	out := cmd.OutOrStdout()
	printer := newStatusPrinter(out)

	statuses := ctx.checkTools(cfg)
	if missing := deps.Missing(statuses); len(missing) > 0 {
		printMissingDependencies(printer, ctx.goos, missing)
		logger.Error("required tools missing", slog.Int("count", len(missing)))
		return errDependenciesMissing
	}
	for _, failed := range preflight.Failed(preflight.RunAll(cfg)) {
		logger.Warn("path check failed",
			slog.String("check", failed.Name),
			slog.String("path", failed.Path),
			slog.String("detail", failed.Detail),
		)
	}

	elicitor := prompt.NewElicitor(ctx.prompter(cmd), prompt.WithStrict(cfg.Prompt.Strict))
	choice, err := elicitor.Elicit(cmd.Context())
	if errors.Is(err, prompt.ErrAborted) {
		printer.println(statusWarn, "👋 No input received, nothing was downloaded.")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("job requested",
		slog.String("link", choice.Link.String()),
		slog.String("format", choice.Format.String()),
		slog.String("url", choice.URL),
	)

	spec, err := job.Build(choice, jobOptions(cfg))
	if err != nil {
		printer.printf(statusError, "❌ An unexpected error occurred: %v", err)
		logger.Error("job build failed", logging.Error(err))
		return nil
	}

	ytdlpPath := statusPath(statuses, "yt-dlp")
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderJobSummary(choice, spec))

	printer.println(statusInfo, "⬇️ Starting download...")
	eng := ctx.newEngine(engine.Options{
		Executable:     ytdlpPath,
		FFmpegLocation: statusPath(statuses, "ffmpeg"),
		Progress:       engine.NewProgressReporter(out, logger),
		Logger:         logger,
	})
	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	outcome := runner.New(eng, logger).Run(runCtx, choice.URL, spec)
	stop()
	printOutcome(printer, outcome)
	return nil
}

func jobOptions(cfg *config.Config) job.Options {
	return job.Options{
		OutputRoot:  cfg.Paths.OutputDir,
		ArchivePath: cfg.Paths.ArchiveFile,
		Downloader:  cfg.Tools.Aria2c,
		ChunkSize:   cfg.Download.ChunkSize,
		Retries:     cfg.Download.Retries,
	}
}

func printMissingDependencies(printer *statusPrinter, goos string, missing []deps.Status) {
	printer.println(statusError, "🚨 Error: Missing required dependencies.")
	printer.println(statusInfo, "Please install the following and make sure they are in your PATH:")
	for _, status := range missing {
		printer.printf(statusInfo, "- %s", status.Name)
	}
	if hint := deps.InstallHint(goos, missing); hint != "" {
		printer.println(statusInfo, "")
		printer.println(statusInfo, hint)
	}
}

func printOutcome(printer *statusPrinter, outcome runner.Outcome) {
	switch outcome.Kind {
	case runner.Completed:
		printer.println(statusOK, "✅ Download finished!")
	case runner.EngineFailure:
		printer.printf(statusError, "❌ An error occurred during download: %s", outcome.Message)
	default:
		printer.printf(statusError, "❌ An unexpected error occurred: %s", outcome.Message)
	}
}

func renderJobSummary(choice job.Choice, spec job.Spec) string {
	rows := [][]string{
		{"Link", choice.Link.String()},
		{"URL", choice.URL},
		{"Format", choice.Format.String()},
		{"Quality", qualityLabel(choice)},
		{"Connections", spec.Delegation.Connections},
		{"Output", spec.OutputTemplate},
		{"Archive", spec.ArchivePath},
	}
	return renderTable([]string{"Setting", "Value"}, rows)
}

func qualityLabel(choice job.Choice) string {
	quality := strings.TrimSpace(choice.Quality)
	if choice.Format == job.Video {
		if quality == "" {
			return "best available"
		}
		return "up to " + quality + "p"
	}
	return "level " + quality
}
