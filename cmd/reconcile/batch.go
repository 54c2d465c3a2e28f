package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"
	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/dsl"
)

// batchFile is the YAML shape accepted via --yaml: a single "spec" field
// carrying the same textual session grammar dsl.Parse consumes directly.
type batchFile struct {
	Spec string `yaml:"spec"`
}

// loadSession reads a batch specification from path (or standard input, if
// path is "-") and parses it into a Session. With --yaml set, the file is
// first unwrapped from a batchFile envelope.
func loadSession(path string) (*core.Session, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = ioutil.ReadAll(os.Stdin)
	} else {
		raw, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read batch input")
	}

	spec := string(raw)
	if rootConfiguration.yamlInput {
		var file batchFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, errors.Wrap(err, "unable to parse YAML batch")
		}
		spec = file.Spec
	}

	session, err := dsl.Parse(spec)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse session spec")
	}
	return session, nil
}

// sequencesFor resolves the sequence names passed on the command line
// against a session, defaulting to every registered sequence when none are
// given.
func sequencesFor(session *core.Session, labels []string) ([]core.CommandSequence, error) {
	if len(labels) == 0 {
		return session.Sequences(), nil
	}
	sequences := make([]core.CommandSequence, 0, len(labels))
	for _, label := range labels {
		seq, ok := session.Sequence(label)
		if !ok {
			return nil, errors.Errorf("no such sequence %q", label)
		}
		sequences = append(sequences, seq)
	}
	return sequences, nil
}
