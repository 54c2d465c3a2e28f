package core

import "strings"

// Node identifies a location in the shared path tree. It wraps a single
// "/"-joined path string (the root node has path ""), following the
// fast, allocation-light string representation used for synchronization
// paths rather than a []string of components. Because the joined path is
// itself the only field, two Node values compare equal with == iff they
// represent the same path; explicit interning (Session.InternNode) is a
// convenience for sharing, not a requirement for correctness.
type Node struct {
	path string
}

// Root is the node representing the root of the shared tree.
var Root = Node{}

// NewNode constructs a Node from an ordered list of path components. An
// empty component list yields the root node.
func NewNode(components ...string) Node {
	return Node{path: strings.Join(components, "/")}
}

// String returns the "/"-joined diagnostic form of the node's path.
func (n Node) String() string {
	return n.path
}

// Components returns the node's path split into its name components. The
// root node returns an empty, non-nil slice.
func (n Node) Components() []string {
	if n.path == "" {
		return []string{}
	}
	return strings.Split(n.path, "/")
}

// Equal reports whether two nodes refer to the same path.
func (n Node) Equal(other Node) bool {
	return n.path == other.path
}

// Compare performs a lexicographic comparison between two nodes, returning
// -1, 0, or 1. A node whose path is a proper prefix of another's compares
// less than it.
func (n Node) Compare(other Node) int {
	first, second := n.path, other.path
	if first == second {
		return 0
	}
	for {
		firstSlash := strings.IndexByte(first, '/')
		secondSlash := strings.IndexByte(second, '/')

		firstHead := first
		if firstSlash != -1 {
			firstHead = first[:firstSlash]
		}
		secondHead := second
		if secondSlash != -1 {
			secondHead = second[:secondSlash]
		}

		if firstHead < secondHead {
			return -1
		} else if firstHead > secondHead {
			return 1
		}

		// Components equal so far; see which path runs out first. A path
		// that runs out is a prefix of the other and sorts less.
		if firstSlash == -1 && secondSlash == -1 {
			return 0
		} else if firstSlash == -1 {
			return -1
		} else if secondSlash == -1 {
			return 1
		}

		first, second = first[firstSlash+1:], second[secondSlash+1:]
	}
}

// IsLess reports whether n sorts strictly before other.
func (n Node) IsLess(other Node) bool { return n.Compare(other) < 0 }

// IsGreater reports whether n sorts strictly after other.
func (n Node) IsGreater(other Node) bool { return n.Compare(other) > 0 }

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n Node) IsAncestorOf(other Node) bool {
	if n.path == other.path {
		return false
	}
	if n.path == "" {
		return other.path != ""
	}
	return strings.HasPrefix(other.path, n.path+"/")
}

// IsDescendantOf reports whether n is a strict descendant of other.
func (n Node) IsDescendantOf(other Node) bool {
	return other.IsAncestorOf(n)
}

// IsParentOf reports whether n is the immediate parent of other.
func (n Node) IsParentOf(other Node) bool {
	dir, ok := parentPath(other.path)
	return ok && dir == n.path
}

// Parent returns the parent of n and true, or the zero Node and false if n
// is the root (which has no parent).
func (n Node) Parent() (Node, bool) {
	dir, ok := parentPath(n.path)
	if !ok {
		return Node{}, false
	}
	return Node{path: dir}, true
}

// parentPath computes the "/"-joined parent of a path, returning false if
// path is already the root.
func parentPath(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	lastSlash := strings.LastIndexByte(path, '/')
	if lastSlash == -1 {
		return "", true
	}
	return path[:lastSlash], true
}
