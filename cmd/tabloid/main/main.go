package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/tabloid/cmd/tabloid"
)

func main() {
	rootCmd := tabloid.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
