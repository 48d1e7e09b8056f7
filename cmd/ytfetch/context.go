package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"ytfetch/internal/config"
	"ytfetch/internal/deps"
	"ytfetch/internal/engine"
	"ytfetch/internal/prompt"
	"ytfetch/internal/runner"
)

// errDependenciesMissing is returned after the missing tools were already
// reported to the operator.
var errDependenciesMissing = errors.New("required dependencies are missing")

var errPathsUnusable = errors.New("configured paths are not usable")

type commandContext struct {
	configFlag string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	goos      string
	newEngine func(engine.Options) runner.Engine
}

func newCommandContext() *commandContext {
	return &commandContext{
		goos: runtime.GOOS,
		newEngine: func(opts engine.Options) runner.Engine {
			return engine.NewYTDLP(opts)
		},
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) checkTools(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(deps.DefaultRequirements(deps.Tools{
		Aria2c: cfg.Tools.Aria2c,
		FFmpeg: cfg.Tools.FFmpeg,
		YTDLP:  cfg.Tools.YTDLP,
	}))
}

// prompter picks the interactive terminal prompter when both ends of the
// session are terminals and plain line input otherwise.
func (c *commandContext) prompter(cmd *cobra.Command) prompt.Prompter {
	in, inFile := cmd.InOrStdin().(*os.File)
	out, outFile := cmd.OutOrStdout().(*os.File)
	if inFile && outFile && isTerminal(in) && isTerminal(out) {
		return prompt.NewSurveyPrompter(in, out, cmd.ErrOrStderr())
	}
	return prompt.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func statusPath(statuses []deps.Status, name string) string {
	for _, status := range statuses {
		if status.Name == name {
			return status.Path
		}
	}
	return ""
}

func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
