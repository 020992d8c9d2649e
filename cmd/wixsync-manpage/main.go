package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wixsync/cmd/wixsync"
	"github.com/arthur-debert/wixsync/internal/version"
)

func main() {
	rootCmd := wixsync.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WIXSYNC",
		Section: "1",
		Source:  "wixsync " + version.Version,
		Manual:  "wixsync manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
