package main

import "github.com/csirmaz/algebraic-reconciler/pkg/reconcile/core"

// canonicalSetFor reduces a sequence to its canonical set with checks
// enabled: a run on one node that does not chain, or a result that fails
// IsSetCanonical (invariant I1), is reported as ErrBreakingSequence.
func canonicalSetFor(sequence core.CommandSequence) (core.CommandSet, error) {
	return core.GetCanonicalSet(sequence, true)
}
