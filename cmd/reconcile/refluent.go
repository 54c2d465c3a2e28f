package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"
)

var refluentCommand = &cobra.Command{
	Use:   "refluent <spec-file|-> [sequence...]",
	Short: "Check whether a set of replica sequences is jointly refluent",
	Args:  cobra.MinimumNArgs(1),
	Run: func(command *cobra.Command, arguments []string) {
		if err := refluentMain(arguments[0], arguments[1:]); err != nil {
			fatal(err)
		}
	},
}

func refluentMain(input string, labels []string) error {
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

	log.Debugf("checking refluency across %d replicas", len(sets))
	if core.CheckRefluent(sets) {
		fmt.Println("refluent")
		return nil
	}
	fmt.Println("not refluent")
	os.Exit(1)
	return nil
}
