package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"ytfetch/internal/engine"
	"ytfetch/internal/job"
	"ytfetch/internal/runner"
	"ytfetch/internal/testsupport"
)

type fakeEngine struct {
	err   error
	calls int
	url   string
	spec  job.Spec
	opts  engine.Options
}

func (f *fakeEngine) Download(_ context.Context, url string, spec job.Spec) error {
	f.calls++
	f.url = url
	f.spec = spec
	return f.err
}

type cliTestEnv struct {
	dir        string
	configPath string
	ctx        *commandContext
	engine     *fakeEngine
}

// setupCLITestEnv runs the CLI from a fresh working directory with a config
// path that does not exist, so defaults apply and files stay in the temp dir.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	fe := &fakeEngine{}
	ctx := newCommandContext()
	ctx.goos = "linux"
	ctx.newEngine = func(opts engine.Options) runner.Engine {
		fe.opts = opts
		return fe
	}
	return &cliTestEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "missing-config.toml"),
		ctx:        ctx,
		engine:     fe,
	}
}

func (env *cliTestEnv) run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := env.execute(context.Background(), strings.NewReader(input), &stdout, &stderr, args...)
	return stdout.String(), stderr.String(), err
}

func (env *cliTestEnv) execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	cmd := newRootCommandWith(env.ctx)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	return cmd.ExecuteContext(ctx)
}

// watchWriter is a goroutine-safe buffer that closes seen once marker has
// been written.
type watchWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	marker string
	seen   chan struct{}
	once   sync.Once
}

func newWatchWriter(marker string) *watchWriter {
	return &watchWriter{marker: marker, seen: make(chan struct{})}
}

func (w *watchWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, err := w.buf.Write(p)
	if strings.Contains(w.buf.String(), w.marker) {
		w.once.Do(func() { close(w.seen) })
	}
	return n, err
}

func (w *watchWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func stubTools(t *testing.T, names ...string) string {
	t.Helper()
	return testsupport.StubBinaries(t, names...)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
