package testsupport

import (
	"path/filepath"
	"testing"

	"ytfetch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config whose output directory and archive live in a
// unique temp directory. The output directory is not created.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "Downloads")
	cfgVal.Paths.ArchiveFile = filepath.Join(base, ".downloaded_files.txt")

	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStrictPrompts turns on eager answer validation.
func WithStrictPrompts() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Prompt.Strict = true
	}
}

// WithStubbedBinaries replaces PATH with a directory of no-op stubs. If names
// is empty, the three required tools are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"aria2c", "ffmpeg", "yt-dlp"}
		}
		StubBinaries(b.t, names...)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
