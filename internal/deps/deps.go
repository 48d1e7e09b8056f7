package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency ytfetch relies on.
type Requirement struct {
	Name        string
	Command     string
	Package     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Package     string
	Description string
	Available   bool
	Path        string
	Detail      string
}

// Tools names the executables a download job needs.
type Tools struct {
	Aria2c string
	FFmpeg string
	YTDLP  string
}

// DefaultRequirements lists the required executables in check order: the
// segment downloader, the transcoder, then the download engine itself.
func DefaultRequirements(tools Tools) []Requirement {
	return []Requirement{
		{
			Name:        "aria2c",
			Command:     orDefault(tools.Aria2c, "aria2c"),
			Package:     "aria2",
			Description: "Multi-connection segment downloader",
		},
		{
			Name:        "ffmpeg",
			Command:     orDefault(tools.FFmpeg, "ffmpeg"),
			Package:     "ffmpeg",
			Description: "Audio extraction and container merging",
		},
		{
			Name:        "yt-dlp",
			Command:     orDefault(tools.YTDLP, "yt-dlp"),
			Package:     "yt-dlp",
			Description: "Download engine",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
// Every requirement is checked; a miss never hides later entries.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Package:     strings.TrimSpace(req.Package),
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = resolved
		results = append(results, status)
	}
	return results
}

// Missing returns the unavailable entries in check order. Every tool is
// required.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, status := range statuses {
		if !status.Available {
			missing = append(missing, status)
		}
	}
	return missing
}

// InstallHint returns a one-line install command for the missing tools on the
// given GOOS. Unknown platforms get no hint.
func InstallHint(goos string, missing []Status) string {
	packages := make([]string, 0, len(missing))
	seen := make(map[string]struct{}, len(missing))
	for _, status := range missing {
		pkg := status.Package
		if pkg == "" {
			pkg = status.Name
		}
		if _, ok := seen[pkg]; ok {
			continue
		}
		seen[pkg] = struct{}{}
		packages = append(packages, pkg)
	}
	if len(packages) == 0 {
		return ""
	}
	list := strings.Join(packages, " ")

	switch goos {
	case "linux":
		return "To install on Debian/Ubuntu, you can use: sudo apt update && sudo apt install -y " + list
	case "darwin":
		return "To install on macOS with Homebrew, you can use: brew install " + list
	case "windows":
		return "To install on Windows with Chocolatey, you can use: choco install " + list
	default:
		return ""
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
