package core

import "fmt"

// Kind identifies the type of a filesystem value. Kinds are totally ordered
// Empty < File < Directory; this order runs from leaf values to container
// values and is what classifies a command as a constructor or destructor.
type Kind uint8

const (
	// KindEmpty represents the absence of any filesystem object.
	KindEmpty Kind = iota
	// KindFile represents a regular file with content.
	KindFile
	// KindDirectory represents a directory.
	KindDirectory
)

// String returns the single-letter diagnostic form of a Kind (E, F, or D).
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "E"
	case KindFile:
		return "F"
	case KindDirectory:
		return "D"
	default:
		return "?"
	}
}

// Value is a tagged filesystem value: Empty, File(contents), or Directory.
// Contents is the opaque comparable token mentioned in the algebra; by
// convention it is empty for Empty and Directory values. Value is
// comparable and is safe to use as a map key or within a comparable
// Command.
type Value struct {
	Kind     Kind
	Contents string
}

// Empty returns the Empty value.
func Empty() Value {
	return Value{Kind: KindEmpty}
}

// File returns a File value with the given contents.
func File(contents string) Value {
	return Value{Kind: KindFile, Contents: contents}
}

// Directory returns the Directory value.
func Directory() Value {
	return Value{Kind: KindDirectory}
}

// IsEmpty reports whether the value is Empty.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// IsFile reports whether the value is a File.
func (v Value) IsFile() bool { return v.Kind == KindFile }

// IsDirectory reports whether the value is a Directory.
func (v Value) IsDirectory() bool { return v.Kind == KindDirectory }

// Equal reports whether two values are equal: same kind and same contents.
func (v Value) Equal(other Value) bool {
	return v == other
}

// TypeEqual reports whether the two values have the same kind.
func (v Value) TypeEqual(other Value) bool { return v.Kind == other.Kind }

// TypeLess reports whether v's kind is strictly less than other's.
func (v Value) TypeLess(other Value) bool { return v.Kind < other.Kind }

// TypeLessEqual reports whether v's kind is less than or equal to other's.
func (v Value) TypeLessEqual(other Value) bool { return v.Kind <= other.Kind }

// TypeGreater reports whether v's kind is strictly greater than other's.
func (v Value) TypeGreater(other Value) bool { return v.Kind > other.Kind }

// TypeGreaterEqual reports whether v's kind is greater than or equal to
// other's.
func (v Value) TypeGreaterEqual(other Value) bool { return v.Kind >= other.Kind }

// String returns the diagnostic form of the value: "E()", "F(contents)", or
// "D()".
func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.Contents)
}
