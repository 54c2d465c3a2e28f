package core

import (
	"fmt"

	"github.com/csirmaz/algebraic-reconciler/pkg/reconcile/identifier"
)

// Session is the interning and scope owner for a batch of command
// sequences: it ensures every distinct path in the batch maps to one
// canonical Node value, and it owns the named-sequence registry used by
// the DSL and CLI surfaces.
//
// Node already has value equality over its path (§10.2), so interning
// through a Session is a convenience for the DSL's bookkeeping rather than
// a correctness requirement for any algorithm in this package: every
// GetAnyMerger/GetGreedyMerger/CheckRefluent/GetCanonicalSet call allocates
// its own scratch state and never reads from a Session.
type Session struct {
	id        string
	interned  map[string]Node
	sequences map[string]CommandSequence
	order     []string
}

// NewSession creates a new Session with a fresh collision-resistant
// identifier.
func NewSession() (*Session, error) {
	id, err := identifier.New(identifier.PrefixSession)
	if err != nil {
		return nil, fmt.Errorf("unable to generate session identifier: %w", err)
	}
	return &Session{
		id:        id,
		interned:  map[string]Node{},
		sequences: map[string]CommandSequence{},
	}, nil
}

// ID returns the session's identifier, of the form "rcon_<43-char Base62>".
func (s *Session) ID() string {
	return s.id
}

// InternNode returns the canonical Node for the given path components,
// reusing a previously interned value for the same path if one exists.
func (s *Session) InternNode(components ...string) Node {
	n := NewNode(components...)
	if existing, ok := s.interned[n.path]; ok {
		return existing
	}
	s.interned[n.path] = n
	return n
}

// SetSequence registers a command sequence under a name, for later
// retrieval via Sequence or enumeration via Sequences. Registering under a
// name already in use replaces the previous sequence without disturbing
// registration order.
func (s *Session) SetSequence(label string, seq CommandSequence) {
	if _, exists := s.sequences[label]; !exists {
		s.order = append(s.order, label)
	}
	s.sequences[label] = seq
}

// Sequence retrieves a previously registered sequence by name.
func (s *Session) Sequence(label string) (CommandSequence, bool) {
	seq, ok := s.sequences[label]
	return seq, ok
}

// Labels returns the registered sequence names in registration order.
func (s *Session) Labels() []string {
	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}

// Sequences returns the registered sequences in registration order.
func (s *Session) Sequences() []CommandSequence {
	result := make([]CommandSequence, len(s.order))
	for i, label := range s.order {
		result[i] = s.sequences[label]
	}
	return result
}
