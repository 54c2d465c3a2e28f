// Package dsl parses the textual session-spec format used throughout this
// algebra's test fixtures into a core.Session. It is explicitly peripheral
// (§1 Non-goals): it consumes core only through its public API
// (core.Session's interning and sequence registration, and the Value,
// Command and CommandSequence constructors) and never reaches into the
// engine's internals.
package dsl

import (
	"fmt"
	"strings"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"
)

// Parse parses a textual session specification into a core.Session whose
// named sequences are retrievable via Session.Sequence.
//
// Grammar:
//
//	a=<d1/d2|E|D>.<d1/d2/f3|E|Ff1>;
//	b=<d1|D|E>
//
// where ';' separates sequence definitions, '=' separates a sequence's
// name from its body, '.' separates commands within a sequence, '|'
// separates a command's path from its before/after values, '/' separates
// path components, and a value's first character (E, F, or D) denotes its
// kind, with any remaining characters forming a File's contents.
func Parse(spec string) (*core.Session, error) {
	session, err := core.NewSession()
	if err != nil {
		return nil, fmt.Errorf("unable to create session: %w", err)
	}

	for _, sequenceSpec := range strings.Split(spec, ";") {
		sequenceSpec = strings.TrimSpace(sequenceSpec)
		if sequenceSpec == "" {
			continue
		}
		parts := strings.SplitN(sequenceSpec, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed sequence definition %q: missing '='", sequenceSpec)
		}
		label := strings.TrimSpace(parts[0])
		commands, err := parseCommands(session, parts[1])
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", label, err)
		}
		session.SetSequence(label, core.NewCommandSequence(commands))
	}

	return session, nil
}

func parseCommands(session *core.Session, body string) ([]core.Command, error) {
	var commands []core.Command
	for _, commandSpec := range strings.Split(strings.TrimSpace(body), ".") {
		commandSpec = strings.Trim(strings.TrimSpace(commandSpec), "<>")
		parts := strings.Split(commandSpec, "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed command %q: expected <path|before|after>", commandSpec)
		}

		pathSpec := strings.TrimSpace(parts[0])
		var components []string
		if pathSpec != "" {
			components = strings.Split(pathSpec, "/")
		}
		node := session.InternNode(components...)

		before, err := parseValue(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		after, err := parseValue(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, err
		}
		commands = append(commands, core.NewCommand(node, before, after))
	}
	return commands, nil
}

func parseValue(spec string) (core.Value, error) {
	if spec == "" {
		return core.Value{}, fmt.Errorf("empty value specification")
	}
	contents := spec[1:]
	switch spec[0] {
	case 'E':
		return core.Empty(), nil
	case 'F':
		return core.File(contents), nil
	case 'D':
		return core.Directory(), nil
	default:
		return core.Value{}, fmt.Errorf("unknown value kind %q", spec[:1])
	}
}
