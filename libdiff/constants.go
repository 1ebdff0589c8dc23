package libdiff

import "fmt"

// Op is the kind of a Change.
type Op int

const (
	// OpAdd inserts To at Path.
	OpAdd Op = iota
	// OpRemove deletes From at Path.
	OpRemove
	// OpChange replaces From by To, both of the same kind.
	OpChange
	// OpKind replaces From by To of a different kind.
	OpKind
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpChange:
		return "change"
	case OpKind:
		return "kind"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Symbol is the one character marker of o in formatted diffs.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpRemove:
		return "-"
	case OpChange:
		return "~"
	default:
		return "!"
	}
}
