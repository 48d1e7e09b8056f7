package preflight

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ytfetch/internal/testsupport"
)

func TestCheckDirectoryAccessOK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccessCreatable(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "a", "b"))
	if !result.Passed || result.Detail != "will be created" {
		t.Fatalf("expected creatable pass, got %#v", result)
	}
}

func TestCheckDirectoryAccessNotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
	if result := CheckDirectoryAccess("test", filepath.Join(f, "child")); result.Passed {
		t.Fatal("expected failure below a file")
	}
}

func TestCheckFileAccess(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "archive.txt")
	if result := CheckFileAccess("archive", f); !result.Passed {
		t.Fatalf("missing file in writable dir should pass: %s", result.Detail)
	}
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckFileAccess("archive", f); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result := CheckFileAccess("archive", dir); result.Passed {
		t.Fatal("expected failure for directory path")
	}
}

func TestCheckDirectoryAccessReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", dir); result.Passed {
		t.Fatal("expected failure for read-only dir")
	}
	if result := CheckDirectoryAccess("test", filepath.Join(dir, "new")); result.Passed {
		t.Fatal("expected failure creating below read-only dir")
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	results := RunAll(cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %#v", failed)
	}
	if RunAll(nil) != nil {
		t.Fatal("expected no results without config")
	}
}
