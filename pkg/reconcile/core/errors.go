package core

import "errors"

// ErrBreakingSequence indicates that GetCanonicalSet(checks=true) found
// successive commands on the same node whose after/before values don't
// chain, or that the resulting set failed its own canonicality check. It
// is fatal to the canonicalisation operation: there is no partial result.
var ErrBreakingSequence = errors.New("breaking sequence: commands on a node do not chain")

// ErrShapeViolation would indicate that a union operation received an
// element that was neither a CommandSet nor a CommandSequence. Go's static
// typing (the Unionable interface accepted by FromSetUnion) makes this
// unreachable through the public API; it is retained so that error
// handling at call sites mirrors the original algebra's four fatal error
// kinds and so that a defensive check can return it if ever needed.
var ErrShapeViolation = errors.New("shape violation: union element is not a command set or sequence")

// ErrDecisionMismatch indicates that GetAnyMerger found a decision point
// whose recorded number of options doesn't match the number of options
// available this invocation. This is a programming error: it means the
// input canonical sets changed between calls that were supposed to replay
// the same decision vector.
var ErrDecisionMismatch = errors.New("decision vector mismatch: input determinism broken between invocations")
