package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/heyps/cmd/heyps"
	"github.com/arthur-debert/heyps/internal/version"
)

func main() {
	rootCmd := heyps.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HEYPS",
		Section: "1",
		Source:  "heyps " + version.Version,
		Manual:  "heyps manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
