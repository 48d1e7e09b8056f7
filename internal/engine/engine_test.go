package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"ytfetch/internal/job"
	"ytfetch/internal/testsupport"
)

func TestLastErrorLine(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string
	}{
		{"empty", "", ""},
		{"error prefix", "WARNING: slow\nERROR: [youtube] abc: Video unavailable\n", "[youtube] abc: Video unavailable"},
		{"last error wins", "ERROR: first\nERROR: second\n", "second"},
		{"no error prefix", "something\n\nlast words\n", "last words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastErrorLine(tt.stderr); got != tt.want {
				t.Fatalf("lastErrorLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDownloadErrorMessage(t *testing.T) {
	if got := (&DownloadError{ExitCode: 2}).Error(); got != "yt-dlp exited with status 2" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := (&DownloadError{ExitCode: 1, Message: "Unsupported URL"}).Error(); got != "Unsupported URL" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestProgressPercent(t *testing.T) {
	if got := (Progress{Downloaded: 5}).Percent(); got != -1 {
		t.Fatalf("expected unknown percent, got %v", got)
	}
	if got := (Progress{Downloaded: 50, Total: 200}).Percent(); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := (Progress{Downloaded: 300, Total: 200}).Percent(); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
}

func TestProgressReporterSamples(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf, nil)
	const mib = 1 << 20
	r.Update(Progress{Item: "Song", Downloaded: 0, Total: 10 * mib})
	r.Update(Progress{Item: "Song", Downloaded: mib / 2, Total: 10 * mib})
	r.Update(Progress{Item: "Song", Downloaded: 5 * mib, Total: 10 * mib})
	r.Update(Progress{Item: "", Downloaded: 3 * mib})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 sampled lines, got %d: %q", len(lines), buf.String())
	}
	if lines[1] != "  Song:  50% (5.0 MiB of 10 MiB)" {
		t.Fatalf("unexpected progress line: %q", lines[1])
	}
	if lines[2] != "  item: 3.0 MiB" {
		t.Fatalf("unexpected unknown-total line: %q", lines[2])
	}
}

func TestProgressReporterReset(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf, nil)
	r.Update(Progress{Item: "Song", Downloaded: 1, Total: 2})
	r.Update(Progress{Item: "Song", Downloaded: 1, Total: 2})
	r.Reset()
	r.Update(Progress{Item: "Song", Downloaded: 1, Total: 2})
	if got := strings.Count(buf.String(), "Song:"); got != 2 {
		t.Fatalf("expected a fresh line after reset, got %d: %q", got, buf.String())
	}

	var nilReporter *ProgressReporter
	nilReporter.Reset()
}

func TestProgressReporterConcurrentUpdates(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Update(Progress{Item: "x", Downloaded: uint64(i), Total: 8})
		}(i)
	}
	wg.Wait()

	var nilReporter *ProgressReporter
	nilReporter.Update(Progress{Item: "ignored"})
}

func writeStub(t *testing.T, body string) string {
	t.Helper()
	return testsupport.WriteStub(t, t.TempDir(), "yt-dlp", body)
}

func audioSpec() job.Spec {
	return job.Compose(job.Choice{
		Link:        job.SingleItem,
		Format:      job.Audio,
		Quality:     "0",
		Parallelism: "5",
		URL:         "https://example.com/watch?v=abc",
	}, job.DefaultOptions())
}

func TestDownloadPassesSpecToExecutable(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStub(t, "printf '%s\\n' \"$@\" > '"+argsFile+"'\nexit 0\n")

	e := NewYTDLP(Options{Executable: stub})
	url := "https://example.com/watch?v=abc"
	if err := e.Download(context.Background(), url, audioSpec()); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	args := strings.Split(strings.TrimSpace(string(data)), "\n")
	joined := strings.Join(args, "\n")
	for _, want := range []string{"bestaudio/best", "aria2c:-x 5 -k 1M", ".downloaded_files.txt", "mp3"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q among args %q", want, args)
		}
	}
	if args[len(args)-1] != url {
		t.Fatalf("expected url as last argument, got %q", args[len(args)-1])
	}
}

func TestDownloadConvertsExitCode(t *testing.T) {
	stub := writeStub(t, "echo 'ERROR: [generic] Unsupported URL: nope' >&2\nexit 1\n")

	err := NewYTDLP(Options{Executable: stub}).Download(context.Background(), "nope", audioSpec())
	var dlErr *DownloadError
	if !errors.As(err, &dlErr) {
		t.Fatalf("expected *DownloadError, got %T (%v)", err, err)
	}
	if dlErr.Error() == "" {
		t.Fatal("expected a message")
	}
}

func TestDownloadCanceledContext(t *testing.T) {
	stub := writeStub(t, "sleep 5\nexit 0\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewYTDLP(Options{Executable: stub}).Download(ctx, "u", audioSpec())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var dlErr *DownloadError
	if errors.As(err, &dlErr) {
		t.Fatal("cancellation must not be reported as an engine rejection")
	}
}

func TestDownloadPassesFFmpegLocation(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStub(t, "printf '%s\\n' \"$@\" > '"+argsFile+"'\nexit 0\n")
	ffmpeg := filepath.Join(t.TempDir(), "ffmpeg")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewYTDLP(Options{Executable: stub, FFmpegLocation: ffmpeg, Logger: logger})
	url := "https://example.com/watch?v=abc"
	if err := e.Download(context.Background(), url, audioSpec()); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	args := strings.Split(strings.TrimSpace(string(data)), "\n")
	found := false
	for i, arg := range args[:len(args)-1] {
		if arg == "--ffmpeg-location" && args[i+1] == ffmpeg {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected --ffmpeg-location %s among args %q", ffmpeg, args)
	}
	if args[len(args)-1] != url {
		t.Fatalf("expected url as last argument, got %q", args[len(args)-1])
	}
	if !strings.Contains(logs.String(), "--ffmpeg-location") {
		t.Fatalf("expected debug command line to name the ffmpeg location: %q", logs.String())
	}
}

func TestDownloadInheritsEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "env.txt")
	stub := writeStub(t, "printf '%s\\n%s\\n' \"$HOME\" \"$HTTPS_PROXY\" > '"+envFile+"'\nexit 0\n")
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HTTPS_PROXY", "http://proxy.internal:3128")

	if err := NewYTDLP(Options{Executable: stub}).Download(context.Background(), "u", audioSpec()); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	data, err := os.ReadFile(envFile)
	if err != nil {
		t.Fatalf("read recorded env: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(got) != 2 || got[0] != home || got[1] != "http://proxy.internal:3128" {
		t.Fatalf("expected HOME and HTTPS_PROXY to reach yt-dlp, got %q", got)
	}
}

func TestDownloadUsesExplicitEnviron(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "env.txt")
	stub := writeStub(t, "printf '%s\\n' \"$YTFETCH_MARKER\" > '"+envFile+"'\nexit 0\n")
	t.Setenv("YTFETCH_MARKER", "from-process")

	e := NewYTDLP(Options{Executable: stub, Environ: []string{"YTFETCH_MARKER=from-options", "=C:=C:\\", "broken"}})
	if err := e.Download(context.Background(), "u", audioSpec()); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	data, err := os.ReadFile(envFile)
	if err != nil {
		t.Fatalf("read recorded env: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "from-options" {
		t.Fatalf("expected explicit environ to win, got %q", got)
	}
}
