package core

import "testing"

func TestGetGreedyMergerDisjointNodes(t *testing.T) {
	a := NewCommandSet(NewCommand(NewNode("a"), Empty(), File("1")))
	b := NewCommandSet(NewCommand(NewNode("b"), Empty(), Directory()))
	merger := GetGreedyMerger([]CommandSet{a, b})
	want := NewCommandSet(
		NewCommand(NewNode("a"), Empty(), File("1")),
		NewCommand(NewNode("b"), Empty(), Directory()),
	)
	if !merger.Equal(want) {
		t.Errorf("GetGreedyMerger() = %v, want %v", merger, want)
	}
}

func TestGetGreedyMergerAncestorDestructionSuppressesDescendant(t *testing.T) {
	// Replica a destroys the whole subtree at "d"; replica b edits a file
	// deep inside it. Once the greedy walk commits to a's destructor at
	// "d", the edit below it must be suppressed.
	a := NewCommandSet(NewCommand(NewNode("d"), Directory(), Empty()))
	b := NewCommandSet(NewCommand(NewNode("d", "f"), File("1"), File("2")))

	merger := GetGreedyMerger([]CommandSet{a, b})
	if merger.Len() != 1 || !merger.Contains(NewCommand(NewNode("d"), Directory(), Empty())) {
		t.Errorf("GetGreedyMerger() = %v, want just the ancestor destructor", merger)
	}
}
