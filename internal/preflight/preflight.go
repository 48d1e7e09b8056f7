package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ytfetch/internal/config"
)

// Result is the outcome of one check.
type Result struct {
	Name   string
	Path   string
	Passed bool
	Detail string
}

// RunAll checks the output directory and the skip archive named by cfg.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("output directory", cfg.Paths.OutputDir),
		CheckFileAccess("skip archive", cfg.Paths.ArchiveFile),
	}
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// CheckDirectoryAccess verifies that path is a writable directory, or can be
// created as one.
func CheckDirectoryAccess(name, path string) Result {
	result := Result{Name: name, Path: path}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return creatable(result)
	case err != nil:
		result.Detail = fmt.Sprintf("stat: %v", err)
		return result
	case !info.IsDir():
		result.Detail = "is not a directory"
		return result
	}
	if err := accessDir(path); err != nil {
		result.Detail = fmt.Sprintf("insufficient permissions: %v", err)
		return result
	}
	result.Passed = true
	result.Detail = "read/write ok"
	return result
}

// CheckFileAccess verifies that path is a writable regular file, or can be
// created in its parent directory.
func CheckFileAccess(name, path string) Result {
	result := Result{Name: name, Path: path}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return creatable(result)
	case err != nil:
		result.Detail = fmt.Sprintf("stat: %v", err)
		return result
	case !info.Mode().IsRegular():
		result.Detail = "is not a regular file"
		return result
	}
	if err := accessFile(path); err != nil {
		result.Detail = fmt.Sprintf("insufficient permissions: %v", err)
		return result
	}
	result.Passed = true
	result.Detail = "read/write ok"
	return result
}

func creatable(result Result) Result {
	parent, err := existingParent(result.Path)
	if err != nil {
		result.Detail = err.Error()
		return result
	}
	if err := accessDir(parent); err != nil {
		result.Detail = fmt.Sprintf("cannot be created in %s: %v", parent, err)
		return result
	}
	result.Passed = true
	result.Detail = "will be created"
	return result
}

func existingParent(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return "", fmt.Errorf("parent %s is not a directory", dir)
			}
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", dir, err)
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("no existing parent for %s", path)
		}
	}
}
