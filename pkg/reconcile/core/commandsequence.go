package core

import (
	"sort"
	"strings"
)

// CommandSequence is an ordered collection of commands. Internally it is a
// flat arena (a []Command); operations that need tree-shaped traversal
// (up-pointer threading) compute a parallel slice of indices rather than
// linking individual command nodes, per the index-based arena
// re-architecture described for this algebra.
type CommandSequence struct {
	commands []Command
}

// NewCommandSequence builds a CommandSequence from the given commands. The
// slice is copied, so the caller's slice may be reused or mutated
// afterwards without affecting the sequence.
func NewCommandSequence(commands []Command) CommandSequence {
	clone := make([]Command, len(commands))
	copy(clone, commands)
	return CommandSequence{commands: clone}
}

// Len returns the number of commands in the sequence.
func (s CommandSequence) Len() int {
	return len(s.commands)
}

// Commands returns a copy of the sequence's commands in order.
func (s CommandSequence) Commands() []Command {
	result := make([]Command, len(s.commands))
	copy(result, s.commands)
	return result
}

// Equal reports whether two sequences hold the same commands in the same
// order.
func (s CommandSequence) Equal(other CommandSequence) bool {
	if len(s.commands) != len(other.commands) {
		return false
	}
	for i, c := range s.commands {
		if !c.Equal(other.commands[i]) {
			return false
		}
	}
	return true
}

// String joins the sequence's diagnostic command forms with ".".
func (s CommandSequence) String() string {
	parts := make([]string, len(s.commands))
	for i, c := range s.commands {
		parts[i] = c.String()
	}
	return strings.Join(parts, ".")
}

// OrderByNode returns a new sequence with commands ordered lexicographically
// by node. The sort is stable: commands on equal nodes keep their relative
// order from s.
func (s CommandSequence) OrderByNode() CommandSequence {
	result := s.Commands()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Node.IsLess(result[j].Node)
	})
	return CommandSequence{commands: result}
}

// OrderByNodeValue returns a new sequence ordered lexicographically by
// (node, before kind, after kind); see commandLess. Commands that differ
// only in contents compare equal, so structurally equal commands are not
// necessarily adjacent afterwards (FromSetUnion de-duplicates by full
// equality instead). The sort is stable.
func (s CommandSequence) OrderByNodeValue() CommandSequence {
	result := s.Commands()
	sort.SliceStable(result, func(i, j int) bool {
		return commandLess(result[i], result[j])
	})
	return CommandSequence{commands: result}
}

// commandLess orders commands by (node, before.kind, after.kind). Contents
// is an opaque comparable token (useful for equality, not ordering), so it
// plays no part in this comparison; two commands that agree on node and
// both kinds but differ only in contents compare equal here, and a stable
// sort then keeps them in their original relative order. This is what lets
// FromSetUnion's de-duplication distinguish "two replicas agree" from "two
// replicas disagree" while still letting the caller's input order act as
// the tie-break the merger uses (see GetGreedyMerger).
func commandLess(a, b Command) bool {
	if cmp := a.Node.Compare(b.Node); cmp != 0 {
		return cmp < 0
	}
	if a.Before.Kind != b.Before.Kind {
		return a.Before.Kind < b.Before.Kind
	}
	return a.After.Kind < b.After.Kind
}

// noUp is the sentinel up-pointer value meaning "no ancestor command".
const noUp = -1

// AddUpPointers computes, for a sequence already ordered by node
// (OrderByNode), the nearest-preceding command whose node is a strict
// ancestor of each command's node. The result is a slice parallel to
// s.Commands(): up[i] is the index of that command, or noUp if there is
// none. Computed in amortised linear time by walking each earlier
// command's own up-pointer instead of rescanning from the start.
func (s CommandSequence) AddUpPointers() []int {
	up := make([]int, len(s.commands))
	for i, c := range s.commands {
		// Walk backwards from the nearest preceding command, following up
		// chains, until we find a strict ancestor of c.Node (or run out).
		candidate := i - 1
		for candidate != noUp {
			if s.commands[candidate].Node.IsAncestorOf(c.Node) {
				break
			}
			candidate = up[candidate]
		}
		up[i] = candidate
	}
	return up
}

// Reversed returns a new sequence with the commands in reverse order.
func (s CommandSequence) Reversed() CommandSequence {
	n := len(s.commands)
	result := make([]Command, n)
	for i, c := range s.commands {
		result[n-1-i] = c
	}
	return CommandSequence{commands: result}
}

// FromSet converts a CommandSet into a CommandSequence. The resulting
// order is unspecified (it follows CommandSet.Slice, i.e. node order) but
// deterministic.
func FromSet(set CommandSet) CommandSequence {
	return CommandSequence{commands: set.Slice()}
}

// AsSet converts the sequence into a CommandSet, discarding order and any
// duplicate commands.
func (s CommandSequence) AsSet() CommandSet {
	return NewCommandSet(s.commands...)
}

// asCommands implements the Unionable interface.
func (s CommandSequence) asCommands() []Command {
	return s.Commands()
}

// Unionable is implemented by CommandSet and CommandSequence: both can
// contribute commands to FromSetUnion. Go's static typing means the
// "shape violation" error from the original algebra (a union element that
// is neither a set nor a sequence) cannot arise here; only values
// satisfying this interface can be passed at all.
type Unionable interface {
	asCommands() []Command
}

// FromSetUnion computes the union of several sets/sequences, de-duplicating
// structurally-equal commands. It concatenates all inputs (preserving their
// relative order, which matters for callers such as GetGreedyMerger that
// use it as a tie-break) and orders the result by (node, before.kind,
// after.kind) via OrderByNodeValue, which groups same-node/same-shape
// commands together without disturbing the relative order of commands
// that merely share a node and shape but carry different contents. Within
// each such group, only the first occurrence of each exactly-equal
// command survives.
func FromSetUnion(parts ...Unionable) CommandSequence {
	var all []Command
	for _, part := range parts {
		all = append(all, part.asCommands()...)
	}
	combined := CommandSequence{commands: all}.OrderByNodeValue()

	seen := make(map[Command]bool, len(combined.commands))
	result := make([]Command, 0, len(combined.commands))
	for _, c := range combined.commands {
		if seen[c] {
			continue
		}
		seen[c] = true
		result = append(result, c)
	}
	return CommandSequence{commands: result}
}

// OrderSet produces an executable ordering of a canonical command set:
// first all constructors in node-ascending order, then all non-constructors
// in node-descending order. Applying commands in this order is
// non-breaking against any shared initial state, because every node is
// built top-down before any node is torn down bottom-up.
func OrderSet(set CommandSet) CommandSequence {
	ascending := FromSet(set).OrderByNode()

	var constructors, nonConstructors []Command
	for _, c := range ascending.commands {
		if c.IsConstructor() {
			constructors = append(constructors, c)
		} else {
			nonConstructors = append(nonConstructors, c)
		}
	}

	descending := CommandSequence{commands: nonConstructors}.Reversed()

	result := make([]Command, 0, len(constructors)+len(nonConstructors))
	result = append(result, constructors...)
	result = append(result, descending.commands...)
	return CommandSequence{commands: result}
}
