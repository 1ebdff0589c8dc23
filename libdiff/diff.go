package libdiff

import (
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
)

// Change is one step turning one tree into another.
type Change struct {
	Path tpath.Path
	Op   Op
	From tag.Tag
	To   tag.Tag
}

// Diff returns the changes turning from into to.  The changes are meant
// to be applied in order: list indices in a change account for the
// insertions and removals before it.  Compound key order is not compared.
func Diff(from, to tag.Tag) []Change {
	var res []Change
	diff(tpath.Path{}, from, to, &res)
	return res
}

func diff(p tpath.Path, from, to tag.Tag, res *[]Change) {
	if from.Kind() != to.Kind() {
		*res = append(*res, Change{Path: p, Op: OpKind, From: from, To: to})
		return
	}
	switch x := from.(type) {
	case *tag.Compound:
		diffCompound(p, x, to.(*tag.Compound), res)
	case *tag.List:
		y := to.(*tag.List)
		if x.Subtype != y.Subtype {
			*res = append(*res, Change{Path: p, Op: OpChange, From: from, To: to})
			return
		}
		diffList(p, x, y, res)
	default:
		if !tag.Equal(from, to) {
			*res = append(*res, Change{Path: p, Op: OpChange, From: from, To: to})
		}
	}
}

func diffCompound(p tpath.Path, from, to *tag.Compound, res *[]Change) {
	for i, k := range from.Keys {
		tv, ok := to.Get(k)
		if !ok {
			*res = append(*res, Change{Path: p.Append(tpath.Field(k)), Op: OpRemove, From: from.Values[i]})
			continue
		}
		diff(p.Append(tpath.Field(k)), from.Values[i], tv, res)
	}
	for i, k := range to.Keys {
		if !from.Has(k) {
			*res = append(*res, Change{Path: p.Append(tpath.Field(k)), Op: OpAdd, To: to.Values[i]})
		}
	}
}
