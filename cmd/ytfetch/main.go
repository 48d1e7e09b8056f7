package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(context.Background(), newRootCommand(), os.Args[1:], os.Stderr))
}

// run executes cmd with args and returns the process exit status. Errors the
// command already reported on stdout are not repeated on stderr.
func run(ctx context.Context, cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, errDependenciesMissing) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}
