package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDepsCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	stubTools(t, "aria2c", "ffmpeg", "yt-dlp")

	out, _, err := env.run(t, "", "deps")
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "aria2c")
	requireContains(t, out, "All required tools are available.")
	requireContains(t, out, "output directory")
	requireContains(t, out, "will be created")
	requireNotContains(t, out, "MISSING")
}

func TestDepsCommandReportsUnusablePaths(t *testing.T) {
	env := setupCLITestEnv(t)
	stubTools(t, "aria2c", "ffmpeg", "yt-dlp")
	if err := os.WriteFile(filepath.Join(env.dir, "Downloads"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	out, _, err := env.run(t, "", "deps")
	if !errors.Is(err, errPathsUnusable) {
		t.Fatalf("expected errPathsUnusable, got %v", err)
	}
	requireContains(t, out, "is not a directory")
	requireContains(t, out, "1 path check(s) failed.")
}

func TestDepsCommandReportsMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	stubTools(t, "aria2c")
	env.ctx.goos = "darwin"

	out, _, err := env.run(t, "", "deps")
	if !errors.Is(err, errDependenciesMissing) {
		t.Fatalf("expected errDependenciesMissing, got %v", err)
	}
	requireContains(t, out, "MISSING")
	requireContains(t, out, `binary "ffmpeg" not found`)
	requireContains(t, out, "brew install ffmpeg yt-dlp")
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.dir, "conf", "config.toml")

	out, _, err := env.run(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := env.run(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting an existing file")
	}
	if _, _, err := env.run(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	env.configPath = target
	env.ctx = newCommandContext()
	out, _, err = env.run(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireNotContains(t, out, "defaults are in effect")
	requireContains(t, out, "output_dir = 'Downloads'")
	requireContains(t, out, "aria2c:-x 5 -k 1M")
	requireContains(t, out, "1M (1.0 MiB)")
	requireContains(t, out, ".downloaded_files.txt.lock")
}

func TestConfigShowWithoutFile(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "defaults are in effect")
}

func TestInvalidConfigFailsCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := env.run(t, "", "config", "show")
	if err == nil {
		t.Fatal("expected load error")
	}
	requireContains(t, err.Error(), "load config")
}
