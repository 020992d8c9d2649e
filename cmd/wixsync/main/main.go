package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wixsync/cmd/wixsync"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/ui"
)

func main() {
	rootCmd := wixsync.NewRootCmd()
	rootCmd.SetArgs(wixsync.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		// Errors go to stderr, styled when it is a terminal
		renderer, rendererErr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rendererErr != nil || renderer.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		// Invocation errors get the usage as well
		code := errors.GetErrorCode(err)
		if code == errors.ErrNoArguments || code == errors.ErrMissingArguments {
			fmt.Fprintln(os.Stderr)
			rootCmd.SetOut(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(errors.ExitCode(err))
	}
}
