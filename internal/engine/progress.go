package engine

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dustin/go-humanize"

	"ytfetch/internal/logging"
)

// Progress is one engine progress observation for the item being fetched.
type Progress struct {
	Item       string
	Downloaded uint64
	Total      uint64
}

// Percent returns completion in [0,100], or -1 when the total is unknown.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return -1
	}
	pct := float64(p.Downloaded) / float64(p.Total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// ProgressReporter prints sampled progress lines. The engine calls Update from
// its own goroutine.
type ProgressReporter struct {
	mu      sync.Mutex
	out     io.Writer
	logger  *slog.Logger
	sampler *logging.ProgressSampler
}

// NewProgressReporter reports to out in 10% steps per item.
func NewProgressReporter(out io.Writer, logger *slog.Logger) *ProgressReporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ProgressReporter{
		out:     out,
		logger:  logger,
		sampler: logging.NewProgressSampler(10),
	}
}

// Update records one observation and prints it when the sampler allows.
func (r *ProgressReporter) Update(p Progress) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item := p.Item
	if item == "" {
		item = "item"
	}
	pct := p.Percent()
	if !r.sampler.ShouldLog(pct, item) {
		return
	}
	line := formatProgress(item, p, pct)
	r.logger.Debug("download progress",
		slog.String("item", item),
		slog.Uint64("downloaded_bytes", p.Downloaded),
		slog.Uint64("total_bytes", p.Total),
	)
	if r.out != nil {
		fmt.Fprintln(r.out, line)
	}
}

// Reset forgets the last reported item so a new download reports from zero.
func (r *ProgressReporter) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sampler.Reset()
}

func formatProgress(item string, p Progress, pct float64) string {
	if pct < 0 {
		return fmt.Sprintf("  %s: %s", item, humanize.IBytes(p.Downloaded))
	}
	return fmt.Sprintf("  %s: %3.0f%% (%s of %s)", item, pct, humanize.IBytes(p.Downloaded), humanize.IBytes(p.Total))
}
