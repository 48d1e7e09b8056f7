package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytfetch/internal/deps"
	"ytfetch/internal/preflight"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external tools and paths ytfetch needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := ctx.checkTools(cfg)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderDependencyTable(statuses))
			paths := preflight.RunAll(cfg)
			fmt.Fprintln(out, renderPathTable(paths))

			printer := newStatusPrinter(out)
			missing := deps.Missing(statuses)
			if len(missing) > 0 {
				if hint := deps.InstallHint(ctx.goos, missing); hint != "" {
					fmt.Fprintln(out, hint)
				}
				return errDependenciesMissing
			}
			if failed := preflight.Failed(paths); len(failed) > 0 {
				printer.printf(statusWarn, "%d path check(s) failed.", len(failed))
				return errPathsUnusable
			}
			printer.println(statusOK, "All required tools are available.")
			return nil
		},
	}
}

func renderDependencyTable(statuses []deps.Status) string {
	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		state := "OK"
		where := status.Path
		if !status.Available {
			state = "MISSING"
			where = status.Detail
		}
		rows = append(rows, []string{status.Name, status.Command, state, where, status.Description})
	}
	return renderTable([]string{"Tool", "Command", "Status", "Location", "Purpose"}, rows)
}

func renderPathTable(results []preflight.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		state := "OK"
		if !r.Passed {
			state = "FAIL"
		}
		rows = append(rows, []string{r.Name, r.Path, state, r.Detail})
	}
	return renderTable([]string{"Path", "Location", "Status", "Detail"}, rows)
}
