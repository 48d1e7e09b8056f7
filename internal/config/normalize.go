package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	envOutputDir = "YTFETCH_OUTPUT_DIR"
	envLogLevel  = "YTFETCH_LOG_LEVEL"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTools(); err != nil {
		return err
	}
	c.normalizeDownload()
	return c.normalizeLogging()
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envOutputDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.TrimSpace(value)
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ArchiveFile) == "" {
		c.Paths.ArchiveFile = defaultArchiveFile
	}
	if c.Paths.ArchiveFile, err = expandPath(strings.TrimSpace(c.Paths.ArchiveFile)); err != nil {
		return fmt.Errorf("paths.archive_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() error {
	tools := []struct {
		key      string
		value    *string
		fallback string
	}{
		{"tools.ytdlp", &c.Tools.YTDLP, defaultYTDLP},
		{"tools.aria2c", &c.Tools.Aria2c, defaultAria2c},
		{"tools.ffmpeg", &c.Tools.FFmpeg, defaultFFmpeg},
	}
	for _, tool := range tools {
		value := strings.TrimSpace(*tool.value)
		if value == "" {
			*tool.value = tool.fallback
			continue
		}
		// Bare names are resolved through PATH later; only paths are expanded.
		if strings.ContainsAny(value, `/\~`) {
			expanded, err := expandPath(value)
			if err != nil {
				return fmt.Errorf("%s: %w", tool.key, err)
			}
			value = expanded
		}
		*tool.value = value
	}
	return nil
}

func (c *Config) normalizeDownload() {
	c.Download.ChunkSize = strings.ToUpper(strings.TrimSpace(c.Download.ChunkSize))
	if c.Download.ChunkSize == "" {
		c.Download.ChunkSize = defaultChunkSize
	}
	if c.Download.Retries == 0 {
		c.Download.Retries = defaultRetries
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
