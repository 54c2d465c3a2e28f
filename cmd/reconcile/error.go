package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// warning prints a warning message to standard error.
func warning(message string) {
	fmt.Fprintln(os.Stderr, color.YellowString("Warning:"), message)
}

// fatal prints an error message to standard error and terminates the
// process with an error exit code.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
	os.Exit(1)
}
