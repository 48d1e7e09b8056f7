package engine

import (
	"bufio"
	"fmt"
	"strings"
)

// DownloadError reports that the download engine ran and rejected the job:
// extraction failure, network failure, unsupported URL, or items that failed
// under the ignore-errors policy.
type DownloadError struct {
	ExitCode int
	Message  string
}

func (e *DownloadError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("yt-dlp exited with status %d", e.ExitCode)
	}
	return e.Message
}

// lastErrorLine picks the most useful line of engine stderr: the last
// "ERROR:" line with its prefix removed, else the last non-blank line.
func lastErrorLine(stderr string) string {
	var lastError, lastLine string
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lastLine = line
		if rest, ok := strings.CutPrefix(line, "ERROR:"); ok {
			lastError = strings.TrimSpace(rest)
		}
	}
	if lastError != "" {
		return lastError
	}
	return lastLine
}
