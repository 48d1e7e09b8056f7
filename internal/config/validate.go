package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	minChunkBytes = 1 << 20
	maxChunkBytes = 1 << 30
	maxRetries    = 100
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDownload(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.ArchiveFile == "" {
		return errors.New("paths.archive_file must be set")
	}
	if filepath.Clean(c.Paths.ArchiveFile) == filepath.Clean(c.Paths.OutputDir) {
		return fmt.Errorf("paths.archive_file %q must not be the output directory", c.Paths.ArchiveFile)
	}
	return nil
}

func (c *Config) validateDownload() error {
	size, err := ChunkBytes(c.Download.ChunkSize)
	if err != nil {
		return fmt.Errorf("download.chunk_size: %w", err)
	}
	if size < minChunkBytes || size > maxChunkBytes {
		return fmt.Errorf("download.chunk_size %q must be between 1M and 1024M", c.Download.ChunkSize)
	}
	if c.Download.Retries < 1 || c.Download.Retries > maxRetries {
		return fmt.Errorf("download.retries must be between 1 and %d", maxRetries)
	}
	return nil
}

// ChunkBytes parses an aria2c size such as "1M", "512K" or "1048576". The K
// and M suffixes are binary multiples, as aria2c reads them.
func ChunkBytes(value string) (uint64, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "K") || strings.HasSuffix(value, "M") ||
		strings.HasSuffix(value, "k") || strings.HasSuffix(value, "m") {
		value += "iB"
	}
	size, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, err
	}
	return size, nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
