package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/heyps/cmd/heyps"
	"github.com/arthur-debert/heyps/pkg/errors"
	"github.com/arthur-debert/heyps/pkg/ui/styles"
)

func main() {
	rootCmd := heyps.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", "Error: "+errors.Message(err)))
		os.Exit(1)
	}
}
