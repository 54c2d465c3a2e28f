package core

import (
	"sort"
	"strings"
)

// CommandSet is an unordered collection of commands with set semantics: at
// most one occurrence of any given Command.
type CommandSet struct {
	commands map[Command]struct{}
}

// NewCommandSet builds a CommandSet from the given commands, discarding
// duplicates.
func NewCommandSet(commands ...Command) CommandSet {
	set := map[Command]struct{}{}
	for _, c := range commands {
		set[c] = struct{}{}
	}
	return CommandSet{commands: set}
}

// Len returns the number of commands in the set.
func (s CommandSet) Len() int {
	return len(s.commands)
}

// Contains reports whether the set contains the given command.
func (s CommandSet) Contains(c Command) bool {
	_, ok := s.commands[c]
	return ok
}

// Equal reports whether two command sets contain exactly the same
// commands.
func (s CommandSet) Equal(other CommandSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for c := range s.commands {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Slice returns the set's commands ordered by node, for deterministic
// iteration and display. Commands on the same node are ordered by their
// before and then their after value (kind, then contents).
func (s CommandSet) Slice() []Command {
	result := make([]Command, 0, len(s.commands))
	for c := range s.commands {
		result = append(result, c)
	}
	valueLess := func(x, y Value) bool {
		if x.Kind != y.Kind {
			return x.Kind < y.Kind
		}
		return x.Contents < y.Contents
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if cmp := a.Node.Compare(b.Node); cmp != 0 {
			return cmp < 0
		}
		if a.Before != b.Before {
			return valueLess(a.Before, b.Before)
		}
		return valueLess(a.After, b.After)
	})
	return result
}

// asCommands implements the Unionable interface.
func (s CommandSet) asCommands() []Command {
	result := make([]Command, 0, len(s.commands))
	for c := range s.commands {
		result = append(result, c)
	}
	return result
}

// String returns a diagnostic representation of the set, commands ordered
// by node and joined by ".".
func (s CommandSet) String() string {
	parts := make([]string, 0, len(s.commands))
	for _, c := range s.Slice() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ".")
}
