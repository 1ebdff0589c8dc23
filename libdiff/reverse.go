package libdiff

import "slices"

// Reverse returns the changes undoing changes: their inverses in reverse
// order.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, Op: c.Op, From: c.To, To: c.From}
		switch c.Op {
		case OpAdd:
			r.Op = OpRemove
		case OpRemove:
			r.Op = OpAdd
		}
		res[i] = r
	}
	slices.Reverse(res)
	return res
}
