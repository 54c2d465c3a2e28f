package core

import "testing"

func TestCommandClassification(t *testing.T) {
	n := NewNode("a")
	construct := NewCommand(n, Empty(), Directory())
	destruct := NewCommand(n, Directory(), Empty())
	edit := NewCommand(n, File("1"), File("2"))
	null := NewCommand(n, File("1"), File("1"))

	if !construct.IsConstructor() || construct.IsDestructor() {
		t.Errorf("Empty->Directory should classify as constructor only")
	}
	if !destruct.IsDestructor() || destruct.IsConstructor() {
		t.Errorf("Directory->Empty should classify as destructor only")
	}
	if !edit.IsEdit() || edit.IsConstructor() || edit.IsDestructor() {
		t.Errorf("File->File with different contents should classify as edit only")
	}
	if !null.IsNull() {
		t.Errorf("File(1)->File(1) should be null")
	}
}

func TestConstructorDestructorPairs(t *testing.T) {
	parent := NewCommand(NewNode("a"), Empty(), Directory())
	child := NewCommand(NewNode("a", "b"), Empty(), File("x"))
	if !parent.IsConstructorPairWithNext(child) {
		t.Errorf("parent constructing a directory with a child constructed from Empty should pair")
	}

	destructChild := NewCommand(NewNode("a", "b"), File("x"), Empty())
	destructParent := NewCommand(NewNode("a"), Directory(), Empty())
	if !destructChild.IsDestructorPairWithNext(destructParent) {
		t.Errorf("child destructed to Empty with parent destructing a directory should pair")
	}
}

func TestWeakConflictWith(t *testing.T) {
	sameNode1 := NewCommand(NewNode("a"), Empty(), File("1"))
	sameNode2 := NewCommand(NewNode("a"), Empty(), File("2"))
	if !sameNode1.WeakConflictWith(sameNode2) {
		t.Errorf("commands on the same node should weakly conflict")
	}

	ancestor := NewCommand(NewNode("a"), Directory(), File("x")) // destroys directory-ness
	descendant := NewCommand(NewNode("a", "b"), Empty(), File("y"))
	if !ancestor.WeakConflictWith(descendant) {
		t.Errorf("destroying an ancestor's directory-ness while a descendant survives should conflict")
	}

	ancestorKeepsDir := NewCommand(NewNode("a"), Directory(), Directory())
	if ancestorKeepsDir.WeakConflictWith(descendant) {
		t.Errorf("an ancestor that remains a directory should not conflict with a surviving descendant")
	}
}

func TestWeakConflictWithPanicsOnEqual(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("WeakConflictWith on equal commands should panic")
		}
	}()
	c := NewCommand(NewNode("a"), Empty(), File("1"))
	c.WeakConflictWith(c)
}
