package core

// GetGreedyMerger computes a single merger for a jointly refluent list of
// canonical command sets by walking the node-ordered union once and, for
// each node, keeping the first command encountered that is not dropped.
// Once a kept command leaves its node as something other than a
// Directory, descendant commands whose after-value isn't Empty are
// dropped; descendant commands that leave their node Empty are kept.
//
// It assumes the input is jointly refluent (CheckRefluent(sets) is true);
// behaviour is undefined otherwise, per the algebra's error-handling
// policy (callers must validate first).
func GetGreedyMerger(sets []CommandSet) CommandSet {
	parts := make([]Unionable, len(sets))
	for i, set := range sets {
		parts[i] = set
	}
	union := FromSetUnion(parts...).OrderByNode()
	commands := union.commands
	up := union.AddUpPointers()

	// deleteConflictsDown is a call-scoped side table: once true for a
	// node, any descendant command whose after-value isn't Empty is
	// suppressed, because an ancestor decision already chose to tear the
	// subtree down.
	deleteConflictsDown := map[Node]bool{}

	var merger []Command
	deleteOnNode, haveDeleteOnNode := Node{}, false

	for i, c := range commands {
		if haveDeleteOnNode && deleteOnNode.Equal(c.Node) {
			continue // already picked a winner on this node
		}

		if up[i] != noUp && deleteConflictsDown[commands[up[i]].Node] {
			deleteConflictsDown[c.Node] = true
			if !c.After.IsEmpty() {
				continue
			}
		}

		merger = append(merger, c)
		deleteOnNode, haveDeleteOnNode = c.Node, true
		if !c.After.IsDirectory() {
			deleteConflictsDown[c.Node] = true
		}
	}

	return NewCommandSet(merger...)
}
