package core

// Decision is one entry in a decision vector: the external continuation
// that drives GetAnyMerger's enumeration of every merger for a jointly
// refluent list of canonical sets. Current indexes the chosen option the
// last time this decision point was reached; NumOptions records how many
// options were available, so that a caller replaying the same vector on a
// re-built (but supposedly identical) input can be caught out by
// ErrDecisionMismatch if determinism was broken between calls.
type Decision struct {
	Current    int
	NumOptions int
	Comment    string
}

// pseudoChildSentinel is a path component that can never arise from a real
// path: the DSL and Node construction never produce components containing
// a NUL byte. It backs the synthetic "pseudo children" command used in
// Pass 2's parent-vs-children conflict resolution.
const pseudoChildSentinel = "\x00pseudo-children"

var pseudoChildrenCommand = NewCommand(NewNode(pseudoChildSentinel), Empty(), Directory())

// nodeFlags holds the per-node transient state used by GetAnyMerger. It is
// always a call-scoped side table (map[Node]*nodeFlags), never a field on
// Node itself, so that concurrent or repeated invocations never observe
// each other's state.
type nodeFlags struct {
	hasDestructorOnDir         bool
	hasConstructorOnEmptyChild bool
	deleteCreatorsDown         bool
	deleteCreatorsStrictlyDown bool
	deleteDestructorsUp        bool
}

type flagTable map[Node]*nodeFlags

func (t flagTable) get(n Node) *nodeFlags {
	f, ok := t[n]
	if !ok {
		f = &nodeFlags{}
		t[n] = f
	}
	return f
}

// decisionState replays a caller-supplied decision vector and extends it
// with fresh entries for conflicts not yet recorded. It is the Go
// realization of make_decision: decisions are identified purely by the
// order in which they're requested, so the sequence of decide calls made
// by runAnyMerger must be deterministic across re-runs on the same input.
type decisionState struct {
	vec    []Decision
	cursor int
}

// decide resolves one conflict among options, consulting the replayed
// vector if a decision already exists at this position or recording a
// fresh "pick the first option" decision otherwise.
func (d *decisionState) decide(options []Command, comment string) (Command, error) {
	n := len(options)
	if d.cursor < len(d.vec) {
		rec := d.vec[d.cursor]
		if rec.NumOptions != n {
			return Command{}, ErrDecisionMismatch
		}
		d.cursor++
		return options[rec.Current], nil
	}
	d.vec = append(d.vec, Decision{Current: 0, NumOptions: n, Comment: comment})
	d.cursor++
	return options[0], nil
}

// incrementDecisionVector advances a decision vector to the next
// lexicographic combination: increment the rightmost entry that isn't
// already at its last option, dropping every entry to its right (those
// represent downstream decisions that must be re-derived against the new
// choice). It reports false once every entry is already at its last
// option, i.e. enumeration is exhausted.
func incrementDecisionVector(vec []Decision) ([]Decision, bool) {
	for i := len(vec) - 1; i >= 0; i-- {
		if vec[i].Current+1 < vec[i].NumOptions {
			result := make([]Decision, i+1)
			copy(result, vec[:i+1])
			result[i].Current++
			return result, true
		}
	}
	return nil, false
}

// GetAnyMerger enumerates mergers for a jointly refluent list of canonical
// command sets, one merger per call, driven by a decision vector acting as
// an external continuation. Pass decisions == nil to start enumeration.
// Each subsequent call passes back the previous call's returned vector
// unchanged. When ok is false, enumeration is complete and merger is the
// zero value.
//
// It assumes sets is jointly refluent; behaviour is undefined otherwise.
func GetAnyMerger(sets []CommandSet, decisions []Decision) (next []Decision, merger CommandSet, ok bool, err error) {
	var vec []Decision
	if decisions != nil {
		nv, advanced := incrementDecisionVector(decisions)
		if !advanced {
			return nil, CommandSet{}, false, nil
		}
		vec = nv
	}

	ds := &decisionState{vec: vec}
	result, err := runAnyMerger(sets, ds)
	if err != nil {
		return nil, CommandSet{}, false, err
	}
	next = ds.vec
	if next == nil {
		// A run that met no decision point still returns a non-nil vector,
		// so that passing it back ends the enumeration instead of
		// restarting it.
		next = []Decision{}
	}
	return next, result, true, nil
}

// unionArena is the index-based scratch state shared by the five passes of
// a single GetAnyMerger invocation.
type unionArena struct {
	commands []Command
	up       []int
	deleted  []bool
	flags    flagTable
}

func buildUnionArena(sets []CommandSet) *unionArena {
	parts := make([]Unionable, len(sets))
	for i, set := range sets {
		parts[i] = set
	}
	ordered := FromSetUnion(parts...).OrderByNode()
	return &unionArena{
		commands: ordered.commands,
		up:       ordered.AddUpPointers(),
		deleted:  make([]bool, len(ordered.commands)),
		flags:    flagTable{},
	}
}

// markDeleteDestructorsUp sets delete_destructors_up (and clears
// has_destructor_on_dir) on the node of the command at startIdx, then
// continues up that command's ancestor chain, stopping at the first node
// already flagged. Callers that want to protect a surviving command's own
// node from this treatment (Pass 4) pass the index of that command's
// up-pointer instead of the command's own index.
func (u *unionArena) markDeleteDestructorsUp(startIdx int) {
	idx := startIdx
	for idx != noUp {
		f := u.flags.get(u.commands[idx].Node)
		if f.deleteDestructorsUp {
			break
		}
		f.deleteDestructorsUp = true
		f.hasDestructorOnDir = false
		idx = u.up[idx]
	}
}

// groupsByNode partitions the indices in order (which must already be
// sorted by node) into runs sharing a node, skipping already-deleted
// entries.
func (u *unionArena) groupsByNode(order []int) [][]int {
	var groups [][]int
	var current []int
	for _, idx := range order {
		if u.deleted[idx] {
			continue
		}
		if len(current) > 0 && !u.commands[current[0]].Node.Equal(u.commands[idx].Node) {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, idx)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

func ascendingIndices(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func descendingIndices(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = n - 1 - i
	}
	return order
}

func runAnyMerger(sets []CommandSet, ds *decisionState) (CommandSet, error) {
	u := buildUnionArena(sets)
	n := len(u.commands)

	// Step 0: seed node flags.
	destructorOnDirIndex := map[Node]int{}
	for i, c := range u.commands {
		if c.IsDestructor() && c.Before.IsDirectory() {
			u.flags.get(c.Node).hasDestructorOnDir = true
			destructorOnDirIndex[c.Node] = i
		}
		if c.IsConstructor() && c.Before.IsEmpty() {
			if parent, ok := c.Node.Parent(); ok {
				u.flags.get(parent).hasConstructorOnEmptyChild = true
			}
		}
	}

	// Pass 1: file-node conflicts, forward.
	for _, group := range u.groupsByNode(ascendingIndices(n)) {
		if len(group) <= 1 || !u.commands[group[0]].Before.IsFile() {
			continue
		}
		options := make([]Command, len(group))
		for i, idx := range group {
			options[i] = u.commands[idx]
		}
		keepNode := u.commands[group[0]].Node
		keep, err := ds.decide(options, "file-node-conflict@"+keepNode.String())
		if err != nil {
			return CommandSet{}, err
		}
		var keepIdx int
		for i, idx := range group {
			if u.commands[idx].Equal(keep) {
				keepIdx = idx
			} else {
				u.deleted[idx] = true
			}
		}

		switch {
		case keep.IsDestructor(): // File -> Empty
			u.flags.get(keep.Node).deleteCreatorsStrictlyDown = true
		case keep.IsConstructor(): // File -> Directory
			u.markDeleteDestructorsUp(keepIdx)
		default: // edit: File -> File
			u.markDeleteDestructorsUp(keepIdx)
			u.flags.get(keep.Node).deleteCreatorsStrictlyDown = true
		}
	}

	// Pass 2: directory-destruction vs. child-construction conflicts,
	// backward over unique nodes.
	uniqueNodesDescending := uniqueNodes(u.commands)
	for _, node := range uniqueNodesDescending {
		f := u.flags.get(node)
		if !(f.hasDestructorOnDir && f.hasConstructorOnEmptyChild) {
			continue
		}
		commandOnNIdx, ok := destructorOnDirIndex[node]
		if !ok {
			continue // flag was cleared by Pass 1's propagation; no conflict remains
		}
		commandOnN := u.commands[commandOnNIdx]
		options := []Command{commandOnN, pseudoChildrenCommand}
		keep, err := ds.decide(options, "dir-vs-children@"+node.String())
		if err != nil {
			return CommandSet{}, err
		}
		if keep.Equal(commandOnN) {
			u.flags.get(node).deleteCreatorsStrictlyDown = true
		} else {
			u.markDeleteDestructorsUp(commandOnNIdx)
		}
	}

	// Pass 3: empty-node conflicts, forward.
	for _, group := range u.groupsByNode(ascendingIndices(n)) {
		if len(group) <= 1 || !u.commands[group[0]].Before.IsEmpty() {
			continue
		}
		options := make([]Command, len(group))
		for i, idx := range group {
			options[i] = u.commands[idx]
		}
		keepNode := u.commands[group[0]].Node
		keep, err := ds.decide(options, "empty-node-conflict@"+keepNode.String())
		if err != nil {
			return CommandSet{}, err
		}
		for _, idx := range group {
			if !u.commands[idx].Equal(keep) {
				u.deleted[idx] = true
			}
		}
		if keep.After.IsFile() {
			u.flags.get(keep.Node).deleteCreatorsStrictlyDown = true
		}
	}

	// Pass 4: directory-node conflicts, backward.
	for _, group := range u.groupsByNode(descendingIndices(n)) {
		if len(group) <= 1 || !u.commands[group[0]].Before.IsDirectory() {
			continue
		}
		options := make([]Command, len(group))
		for i, idx := range group {
			options[i] = u.commands[idx]
		}
		keepNode := u.commands[group[0]].Node
		keep, err := ds.decide(options, "dir-node-conflict@"+keepNode.String())
		if err != nil {
			return CommandSet{}, err
		}
		var keepIdx int
		for _, idx := range group {
			if u.commands[idx].Equal(keep) {
				keepIdx = idx
			} else {
				u.deleted[idx] = true
			}
		}
		if keep.After.IsFile() && u.up[keepIdx] != noUp {
			u.markDeleteDestructorsUp(u.up[keepIdx])
		}
	}

	// Pass 5: collect, propagating flags forward.
	var merger []Command
	for i, c := range u.commands {
		upDown, upStrictlyDown := false, false
		if u.up[i] != noUp {
			upFlags := u.flags.get(u.commands[u.up[i]].Node)
			upDown, upStrictlyDown = upFlags.deleteCreatorsDown, upFlags.deleteCreatorsStrictlyDown
		}
		cf := u.flags.get(c.Node)
		if upStrictlyDown || upDown {
			cf.deleteCreatorsDown = true
		}
		if cf.deleteCreatorsDown && !c.After.IsEmpty() {
			u.deleted[i] = true
		}
		if cf.deleteDestructorsUp && c.IsDestructor() {
			u.deleted[i] = true
		}
		if !u.deleted[i] {
			merger = append(merger, c)
		}
	}

	return NewCommandSet(merger...), nil
}

// uniqueNodes returns the distinct nodes appearing in a node-ascending
// command slice, in descending order, as Pass 2 requires.
func uniqueNodes(commands []Command) []Node {
	var ascending []Node
	for i, c := range commands {
		if i == 0 || !c.Node.Equal(commands[i-1].Node) {
			ascending = append(ascending, c.Node)
		}
	}
	descending := make([]Node, len(ascending))
	for i, node := range ascending {
		descending[len(ascending)-1-i] = node
	}
	return descending
}
