//go:build !unix

package preflight

import (
	"errors"
	"os"
)

var errReadOnly = errors.New("read-only")

func accessDir(path string) error {
	return accessFile(path)
}

func accessFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o200 == 0 {
		return errReadOnly
	}
	return nil
}
