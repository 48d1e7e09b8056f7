package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"ytfetch/internal/engine"
	"ytfetch/internal/job"
	"ytfetch/internal/logging"
)

// ErrArchiveBusy is reported when another process holds the archive lock.
var ErrArchiveBusy = errors.New("download archive is in use by another ytfetch run")

// Engine fetches one URL according to a job specification.
type Engine interface {
	Download(ctx context.Context, url string, spec job.Spec) error
}

// Kind classifies the end of a run.
type Kind int

const (
	// Completed means the engine returned without error.
	Completed Kind = iota
	// EngineFailure means the engine ran and rejected the job.
	EngineFailure
	// UnexpectedFailure covers every other error.
	UnexpectedFailure
)

func (k Kind) String() string {
	switch k {
	case Completed:
		return "completed"
	case EngineFailure:
		return "engine_failure"
	case UnexpectedFailure:
		return "unexpected_failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the result of one run. Message is empty for Completed.
type Outcome struct {
	Kind    Kind
	Message string
	Err     error
	Elapsed time.Duration
}

// Runner hands job specifications to an Engine.
type Runner struct {
	engine Engine
	logger *slog.Logger
	now    func() time.Time
}

// New constructs a Runner.
func New(e Engine, logger *slog.Logger) *Runner {
	return &Runner{
		engine: e,
		logger: logging.NewComponentLogger(logger, "runner"),
		now:    time.Now,
	}
}

// Run submits spec and url to the engine exactly once and classifies the
// result. It never retries; retries belong to the engine's policy.
func (r *Runner) Run(ctx context.Context, url string, spec job.Spec) Outcome {
	start := r.now()
	outcome := r.run(ctx, url, spec)
	outcome.Elapsed = r.now().Sub(start)

	attrs := []any{
		slog.String("url", url),
		slog.String("outcome", outcome.Kind.String()),
		slog.Duration("elapsed", outcome.Elapsed),
	}
	switch outcome.Kind {
	case Completed:
		r.logger.Info("download finished", attrs...)
	case EngineFailure:
		r.logger.Warn("download engine reported failure", append(attrs, logging.Error(outcome.Err))...)
	default:
		r.logger.Error("download failed unexpectedly", append(attrs, logging.Error(outcome.Err))...)
	}
	return outcome
}

func (r *Runner) run(ctx context.Context, url string, spec job.Spec) (outcome Outcome) {
	if r.engine == nil {
		return classify(errors.New("no download engine configured"))
	}

	unlock, err := lockArchive(spec.ArchivePath)
	if err != nil {
		return classify(err)
	}
	defer unlock()

	defer func() {
		if rec := recover(); rec != nil {
			outcome = classify(fmt.Errorf("download engine panic: %v", rec))
		}
	}()

	return classify(r.engine.Download(ctx, url, spec))
}

func classify(err error) Outcome {
	if err == nil {
		return Outcome{Kind: Completed}
	}
	var dlErr *engine.DownloadError
	if errors.As(err, &dlErr) {
		return Outcome{Kind: EngineFailure, Message: dlErr.Error(), Err: err}
	}
	return Outcome{Kind: UnexpectedFailure, Message: err.Error(), Err: err}
}

// LockPath names the advisory lock file kept beside archivePath. It is created
// on the first run and left in place afterwards; deleting it while no run is
// active is harmless.
func LockPath(archivePath string) string {
	return archivePath + ".lock"
}

// lockArchive takes the LockPath lock for the length of the run.
func lockArchive(archivePath string) (func(), error) {
	if archivePath == "" {
		return func() {}, nil
	}
	if dir := filepath.Dir(archivePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}
	lock := flock.New(LockPath(archivePath))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire archive lock: %w", err)
	}
	if !ok {
		return nil, ErrArchiveBusy
	}
	return func() { _ = lock.Unlock() }, nil
}
