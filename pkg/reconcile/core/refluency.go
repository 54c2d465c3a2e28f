package core

// replicaIndex is the per-node bitmap of which replicas (by position in the
// input list) touch that node, used by CheckRefluent's conditions (c) and
// (d). It is a call-scoped side table, never stored on Node itself.
type replicaIndex map[Node]uint64

func (idx replicaIndex) mark(n Node, replica int) {
	idx[n] |= 1 << uint(replica)
}

// subset reports whether every bit set in a is also set in b: a ⊆ b.
func subset(a, b uint64) bool {
	return a&^b == 0
}

// CheckRefluent decides whether a list of canonical command sets (one per
// replica) is jointly refluent: whether the replicas' intents can be
// merged without contradiction on their shared nodes. It implements
// conditions (a)-(d) from the joint-refluency definition:
//
//	(a) same-node check: if the previous command in node order shares a
//	    node with c, their before values must be equal;
//	(b) up-pointer shape: if any replica has a command on c.node's parent,
//	    c's up-pointer must land exactly on that parent;
//	(c) subset-down: if c's up-pointer lands on its parent and that
//	    command's before isn't Directory, every replica touching c.node
//	    also touches the parent;
//	(d) superset-up: if c.before isn't Empty, either c has no up-pointer or
//	    every replica touching the up-pointer's node also touches c.node.
//
// Any violation makes the whole list not jointly refluent.
func CheckRefluent(sets []CommandSet) bool {
	if len(sets) > 64 {
		// The replica bitmap is a uint64; this is an implementation limit,
		// not an algebraic one. No caller in this codebase approaches it.
		panic("CheckRefluent supports at most 64 replicas")
	}

	index := replicaIndex{}
	parts := make([]Unionable, len(sets))
	for i, set := range sets {
		for c := range set.commands {
			index.mark(c.Node, i)
		}
		parts[i] = set
	}

	union := FromSetUnion(parts...).OrderByNode()
	commands := union.commands
	up := union.AddUpPointers()

	for i, c := range commands {
		// (a) Same-node check.
		if i > 0 && commands[i-1].Node.Equal(c.Node) && !commands[i-1].Before.Equal(c.Before) {
			return false
		}

		// (b) Up-pointer shape.
		if parent, ok := c.Node.Parent(); ok && index[parent] != 0 {
			if up[i] == noUp || !commands[up[i]].Node.Equal(parent) {
				return false
			}
		}

		if up[i] != noUp {
			upCmd := commands[up[i]]

			// (c) Subset-down.
			if upCmd.Node.IsParentOf(c.Node) && !upCmd.Before.IsDirectory() {
				if !subset(index[c.Node], index[upCmd.Node]) {
					return false
				}
			}

			// (d) Superset-up.
			if !c.Before.IsEmpty() && !subset(index[upCmd.Node], index[c.Node]) {
				return false
			}
		}
	}

	return true
}
