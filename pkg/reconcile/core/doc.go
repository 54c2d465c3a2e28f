// Package core implements the filesystem-synchronization command algebra:
// canonicalisation of command sequences, joint refluency checking across
// replicas, and both a greedy and an exhaustive merger for resolving
// conflicts between replicas' intents.
//
// A command <n, b, a> asserts that, at node n, the filesystem held value b
// and now holds value a, where a value is one of Empty, File(contents), or
// Directory. A canonical set is the minimal, order-independent set of
// commands equivalent to some input sequence. Given a list of canonical
// sets (one per replica), CheckRefluent decides whether the replicas can be
// merged without contradiction, and GetGreedyMerger/GetAnyMerger produce
// the resulting merged command set(s).
//
// The package performs no I/O and holds no state across calls beyond what a
// caller explicitly threads through (a Session for node interning, a
// decision vector for merger enumeration).
package core
