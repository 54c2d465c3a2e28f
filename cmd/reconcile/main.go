// Command reconcile drives the filesystem-synchronization command algebra
// end to end: it reads a batch of named command sequences (in the textual
// session DSL or as YAML) and reports canonicalisation, refluency, or
// merger results.
package main

import "os"

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
