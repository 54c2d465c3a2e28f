package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"
)

var enumerateConfiguration struct {
	limit int
}

var enumerateCommand = &cobra.Command{
	Use:   "enumerate <spec-file|-> [sequence...]",
	Short: "Enumerate every merger admitted by the decision-vector protocol",
	Args:  cobra.MinimumNArgs(1),
	Run: func(command *cobra.Command, arguments []string) {
		if err := enumerateMain(arguments[0], arguments[1:]); err != nil {
			fatal(err)
		}
	},
}

func init() {
	flags := enumerateCommand.Flags()
	flags.IntVarP(&enumerateConfiguration.limit, "limit", "n", 0, "Stop after this many mergers (0 means unbounded)")
}

func enumerateMain(input string, labels []string) error {
	session, err := loadSession(input)
	if err != nil {
		return err
	}
	sequences, err := sequencesFor(session, labels)
	if err != nil {
		return err
	}

	sets := make([]core.CommandSet, len(sequences))
	for i, sequence := range sequences {
		set, err := canonicalSetFor(sequence)
		if err != nil {
			return err
		}
		sets[i] = set
	}

	var decisions []core.Decision
	count := 0
	for {
		// Each iteration gets its own correlation id, so a --verbose trace
		// of the decision vector's replay can be matched back to the
		// merger it produced.
		iterationID := uuid.New()

		next, merger, ok, err := core.GetAnyMerger(sets, decisions)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		decisions = next
		count++

		log.Debugf("[%s] merger %d: decision vector %v", iterationID, count, decisions)
		fmt.Printf("merger %d (%s):\n", count, iterationID)
		printCommandSet(merger)

		if enumerateConfiguration.limit > 0 && count >= enumerateConfiguration.limit {
			log.Debugf("stopping after reaching the configured limit of %d", enumerateConfiguration.limit)
			break
		}
	}

	fmt.Printf("%d merger(s) enumerated\n", count)
	return nil
}
