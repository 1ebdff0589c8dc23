package libdiff

import (
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffList aligns the elements of two lists of one subtype.
//
//  1. every element is summarised: scalars and arrays by their value,
//     containers by their kind alone
//  2. the sequences of summaries are diffed
//  3. aligned elements are diffed recursively, which is where containers
//     get compared
//  4. a removal run directly followed by an insertion run is paired up
//     into changes; the rest become removals and additions
func diffList(p tpath.Path, from, to *tag.List, res *[]Change) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from.Values)
	toRunes := mapValues(m, to.Values)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ci := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			for range n {
				diff(p.Append(tpath.Index(ci)), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
				ci++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			paired := min(n, ins)
			for range paired {
				diff(p.Append(tpath.Index(ci)), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
				ci++
			}
			for range n - paired {
				*res = append(*res, Change{Path: p.Append(tpath.Index(ci)), Op: OpRemove, From: from.Values[fi]})
				fi++
			}
			for range ins - paired {
				*res = append(*res, Change{Path: p.Append(tpath.Index(ci)), Op: OpAdd, To: to.Values[ti]})
				ti++
				ci++
			}
		case diffpatch.DiffInsert:
			for range n {
				*res = append(*res, Change{Path: p.Append(tpath.Index(ci)), Op: OpAdd, To: to.Values[ti]})
				ti++
				ci++
			}
		}
	}
}

func mapValues(m map[string]rune, vs []tag.Tag) []rune {
	rs := make([]rune, len(vs))
	for i, v := range vs {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			// stay clear of the surrogate range
			r = rune(len(m)) + 0x10000
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(t tag.Tag) string {
	if tag.IsContainer(t) {
		return t.Kind().String()
	}
	d, err := tag.MarshalJSON(t)
	if err != nil {
		return t.Kind().String()
	}
	return string(d)
}
