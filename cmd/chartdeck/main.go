package main

import (
	"fmt"
	"os"

	"chartdeck/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
