package core

import "testing"

func TestCheckRefluentParentBecomesFileChildCreated(t *testing.T) {
	a := NewCommandSet(NewCommand(NewNode("1"), Directory(), File("1")))
	b := NewCommandSet(NewCommand(NewNode("1", "2"), Empty(), File("2")))
	if !CheckRefluent([]CommandSet{a, b}) {
		t.Errorf("a directory parent turned into a file alongside a new child should be refluent")
	}
}

func TestCheckRefluentChildCreatedUnderFileParent(t *testing.T) {
	a := NewCommandSet(NewCommand(NewNode("1"), File("1"), File("2")))
	b := NewCommandSet(NewCommand(NewNode("1", "2"), Empty(), File("3")))
	if CheckRefluent([]CommandSet{a, b}) {
		t.Errorf("a parent edit conflicting with a surviving child should not be refluent")
	}
}

func TestCheckRefluentPanicsOnTooManyReplicas(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for more than 64 replicas")
		}
	}()
	sets := make([]CommandSet, 65)
	for i := range sets {
		sets[i] = NewCommandSet()
	}
	CheckRefluent(sets)
}
