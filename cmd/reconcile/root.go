package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/csirmaz/algebraic-reconciler/pkg/logging"
)

// rootConfiguration holds flags shared by every subcommand.
var rootConfiguration struct {
	// verbose enables debug-level trace logging of the merger engine's
	// decision points.
	verbose bool
	// yamlInput treats the batch file as a YAML document with a "spec"
	// field rather than a raw DSL session spec.
	yamlInput bool
	// noColor disables ANSI highlighting of command diagnostics
	// regardless of terminal detection.
	noColor bool
}

// log is the shared logger used by every subcommand; its level is set in
// the root command's PersistentPreRun once flags have been parsed.
var log = logging.RootLogger

var rootCommand = &cobra.Command{
	Use:   "reconcile",
	Short: "Canonicalise, check, and merge filesystem-synchronization command sequences",
	PersistentPreRun: func(command *cobra.Command, arguments []string) {
		// Load an optional .env file into the process environment, as
		// mutagen's cmd packages do. No flag of this command takes its
		// default from that environment. A missing file is not an error.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			warning(fmt.Sprintf("unable to load .env: %v", err))
		}

		level := logging.LevelInfo
		if rootConfiguration.verbose {
			level = logging.LevelDebug
		}
		log = logging.NewLogger(level)
	},
}

func init() {
	cobra.EnableCommandSorting = false

	flags := rootCommand.PersistentFlags()
	flags.BoolVarP(&rootConfiguration.verbose, "verbose", "v", false, "Show merger-engine trace information")
	flags.BoolVar(&rootConfiguration.yamlInput, "yaml", false, "Treat the batch file as YAML with a top-level \"spec\" field")
	flags.BoolVar(&rootConfiguration.noColor, "no-color", false, "Disable colorized command diagnostics")

	rootCommand.AddCommand(
		canonicalCommand,
		refluentCommand,
		mergeCommand,
		enumerateCommand,
	)
}
