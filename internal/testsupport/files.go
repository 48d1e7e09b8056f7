package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteStub writes an executable shell script named name into dir and returns
// its path. Tests using it are skipped on windows.
func WriteStub(t testing.TB, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not executable on windows")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// StubBinaries writes no-op stubs for names into a fresh directory and makes
// that directory the entire PATH for the rest of the test.
func StubBinaries(t testing.TB, names ...string) string {
	t.Helper()
	binDir := t.TempDir()
	for _, name := range names {
		WriteStub(t, binDir, name, "exit 0\n")
	}
	t.Setenv("PATH", binDir)
	return binDir
}
