package job

import (
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
)

// DownloaderArgs returns the value of the engine's --downloader-args flag,
// scoped to the delegated downloader.
func (s Spec) DownloaderArgs() string {
	return downloaderName(s.Delegation.Binary) + ":" + strings.Join(s.Delegation.Args(), " ")
}

// Args renders the engine argument vector equivalent to the specification,
// without the executable and URL.
func (s Spec) Args() []string {
	args := []string{
		"--output", s.OutputTemplate,
		"--format", s.FormatSelector,
	}
	if step, ok := s.AudioExtraction(); ok {
		args = append(args,
			"--extract-audio",
			"--audio-format", step.Codec,
			"--audio-quality", step.Quality,
		)
	}
	if container := s.MergeContainer(); container != "" {
		args = append(args, "--merge-output-format", container)
	}
	args = append(args,
		"--downloader", s.Delegation.Binary,
		"--downloader-args", s.DownloaderArgs(),
	)
	if s.IgnoreErrors {
		args = append(args, "--ignore-errors")
	}
	args = append(args,
		"--retries", strconv.Itoa(s.Retries),
		"--download-archive", s.ArchivePath,
	)
	return args
}

// CommandLine renders a shell-quoted command equivalent to running the job
// against url with the given engine executable. extra goes before the url.
func (s Spec) CommandLine(executable, url string, extra ...string) string {
	parts := make([]string, 0, len(s.Args())+len(extra)+2)
	parts = append(parts, executable)
	parts = append(parts, s.Args()...)
	parts = append(parts, extra...)
	parts = append(parts, url)
	return shellescape.QuoteCommand(parts)
}

// downloaderName strips directories and the Windows extension so a configured
// path still matches the engine's per-downloader argument scope.
func downloaderName(binary string) string {
	name := binary
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, ".exe")
}
