package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"ytfetch/internal/config"
	"ytfetch/internal/job"
	"ytfetch/internal/runner"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", filepath.Clean(target))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration and job defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file does not exist; defaults are in effect")
			}
			fmt.Fprintln(out)

			encoded, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			fmt.Fprintln(out, strings.TrimSpace(string(encoded)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderJobDefaults(cfg))
			return nil
		},
	}
}

func renderJobDefaults(cfg *config.Config) string {
	spec := job.Compose(job.Choice{
		Link:        job.SingleItem,
		Format:      job.Audio,
		Quality:     job.DefaultAudioQuality,
		Parallelism: job.DefaultParallelism,
		URL:         "URL",
	}, jobOptions(cfg))

	chunk := cfg.Download.ChunkSize
	if size, err := config.ChunkBytes(chunk); err == nil {
		chunk = fmt.Sprintf("%s (%s)", chunk, humanize.IBytes(size))
	}
	rows := [][]string{
		{"Output template", spec.OutputTemplate},
		{"Skip archive", spec.ArchivePath},
		{"Archive lock", runner.LockPath(spec.ArchivePath)},
		{"Downloader args", spec.DownloaderArgs()},
		{"Chunk size", chunk},
		{"Retries", strconv.Itoa(spec.Retries)},
		{"Strict prompts", strconv.FormatBool(cfg.Prompt.Strict)},
	}
	return renderTable([]string{"Job default", "Value"}, rows)
}
