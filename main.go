package main

import (
	"fmt"
	"os"

	"demoqa_automation/presentation/terminal"
)

// Version information, injected at build time.
var Version = "dev"

func main() {
	rootCmd := terminal.NewRootCmd()
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
