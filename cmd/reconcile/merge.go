package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"
)

var mergeCommand = &cobra.Command{
	Use:   "merge <spec-file|-> [sequence...]",
	Short: "Merge replica sequences with the greedy, deterministic merger",
	Args:  cobra.MinimumNArgs(1),
	Run: func(command *cobra.Command, arguments []string) {
		if err := mergeMain(arguments[0], arguments[1:]); err != nil {
			fatal(err)
		}
	},
}

func mergeMain(input string, labels []string) error {
	session, err := loadSession(input)
	if err != nil {
		return err
	}
	sequences, err := sequencesFor(session, labels)
	if err != nil {
		return err
	}

	sets := make([]core.CommandSet, len(sequences))
	total := 0
	for i, sequence := range sequences {
		set, err := canonicalSetFor(sequence)
		if err != nil {
			return err
		}
		sets[i] = set
		total += set.Len()
	}

	log.Debugf("merging %d replicas", len(sets))
	merger := core.GetGreedyMerger(sets)

	printCommandSet(merger)
	fmt.Printf(
		"merged %s commands from %s replicas into %s\n",
		humanize.Comma(int64(total)),
		humanize.Comma(int64(len(sets))),
		humanize.Comma(int64(merger.Len())),
	)
	return nil
}
