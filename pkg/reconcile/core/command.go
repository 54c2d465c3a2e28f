package core

import "fmt"

// Command is the triple <node, before, after>: an assertion that, at node,
// the filesystem held value Before and now holds value After. Command is
// comparable and safe to use as a map key (the backing representation for
// CommandSet).
type Command struct {
	Node   Node
	Before Value
	After  Value
}

// NewCommand constructs a Command.
func NewCommand(node Node, before, after Value) Command {
	return Command{Node: node, Before: before, After: after}
}

// Equal reports whether two commands are identical.
func (c Command) Equal(other Command) bool {
	return c == other
}

// IsNull reports whether the command is a no-op: before equals after.
func (c Command) IsNull() bool {
	return c.Before.Equal(c.After)
}

// IsConstructor reports whether the command grows structure: type(after) >
// type(before).
func (c Command) IsConstructor() bool {
	return c.After.TypeGreater(c.Before)
}

// IsDestructor reports whether the command shrinks structure: type(after) <
// type(before).
func (c Command) IsDestructor() bool {
	return c.After.TypeLess(c.Before)
}

// IsEdit reports whether the command changes contents without changing
// type. Only meaningful for File->File commands.
func (c Command) IsEdit() bool {
	return c.Before.TypeEqual(c.After) && !c.Before.Equal(c.After)
}

// IsConstructorPairWithNext reports whether c and other form a constructor
// pair: c constructs a Directory, other constructs something from Empty,
// and c's node is the parent of other's node.
func (c Command) IsConstructorPairWithNext(other Command) bool {
	return c.IsConstructor() && c.After.IsDirectory() &&
		other.IsConstructor() && other.Before.IsEmpty() &&
		c.Node.IsParentOf(other.Node)
}

// IsDestructorPairWithNext reports whether c and other form a destructor
// pair: c destructs to Empty, other destructs a Directory, and other's
// node is the parent of c's node.
func (c Command) IsDestructorPairWithNext(other Command) bool {
	return c.IsDestructor() && c.After.IsEmpty() &&
		other.IsDestructor() && other.Before.IsDirectory() &&
		other.Node.IsParentOf(c.Node)
}

// WeakConflictWith reports whether c and other conflict under the weak
// conflict relation: they share a node, or one's node is an ancestor of
// the other's and the ancestor's after-value isn't Directory while the
// descendant's after-value isn't Empty. It panics if called on two equal
// commands, mirroring the algebra's precondition that conflict is only
// meaningful between distinct commands.
func (c Command) WeakConflictWith(other Command) bool {
	if c.Equal(other) {
		panic("WeakConflictWith called on equal commands")
	}
	if c.Node.Equal(other.Node) {
		return true
	}

	var ancestor, descendant Command
	switch {
	case c.Node.IsAncestorOf(other.Node):
		ancestor, descendant = c, other
	case c.Node.IsDescendantOf(other.Node):
		ancestor, descendant = other, c
	default:
		return false
	}

	return !ancestor.After.IsDirectory() && !descendant.After.IsEmpty()
}

// String returns the diagnostic form "<node|before|after>".
func (c Command) String() string {
	return fmt.Sprintf("<%s|%s|%s>", c.Node, c.Before, c.After)
}
