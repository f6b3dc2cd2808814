package main

import (
	"fmt"
	"os"

	"gink/src/cli"
)

// runMain executes the main application logic and returns the exit code
// This function is extracted for testing purposes
func runMain() int {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cli.IsValidationError(err) {
			fmt.Fprintln(os.Stderr, "Run 'gink server --help' for the accepted values.")
		}
		return 1
	}
	return 0
}

func main() {
	exitCode := runMain()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
