package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var canonicalCommand = &cobra.Command{
	Use:   "canonical <spec-file|-> [sequence...]",
	Short: "Reduce named sequences to their canonical command sets",
	Args:  cobra.MinimumNArgs(1),
	Run: func(command *cobra.Command, arguments []string) {
		if err := canonicalMain(arguments[0], arguments[1:]); err != nil {
			fatal(err)
		}
	},
}

func canonicalMain(input string, labels []string) error {
	session, err := loadSession(input)
	if err != nil {
		return err
	}

	if len(labels) == 0 {
		labels = session.Labels()
	}

	for _, label := range labels {
		sequence, ok := session.Sequence(label)
		if !ok {
			return errors.Errorf("no such sequence %q", label)
		}
		log.Debugf("canonicalising %q (%d commands)", label, sequence.Len())
		set, err := canonicalSetFor(sequence)
		if err != nil {
			return errors.Wrapf(err, "sequence %q is not canonicalisable", label)
		}
		fmt.Printf("%s:\n", label)
		printCommandSet(set)
	}
	return nil
}
