package tree

import (
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
)

// Index caches the NodeRef of every tag in a tree by path, in walk order.
//
// An Index is valid only until the next structural change to the tree it
// was built from (insert, delete, rename or replace).  It does not detect
// staleness; whoever mutates the tree rebuilds the index.
type Index struct {
	refs   []NodeRef
	byPath map[string]int
}

// BuildIndex walks root and records every tag.
func BuildIndex(root tag.Tag) *Index {
	idx := &Index{byPath: map[string]int{}}
	if root == nil {
		return idx
	}
	_ = Walk(root, func(r NodeRef) (bool, error) {
		idx.byPath[r.Path.Quoted()] = len(idx.refs)
		idx.refs = append(idx.refs, r)
		return true, nil
	})
	return idx
}

// Lookup returns the cached ref at p.
func (idx *Index) Lookup(p tpath.Path) (NodeRef, bool) {
	i, ok := idx.byPath[p.Quoted()]
	if !ok {
		return NodeRef{}, false
	}
	return idx.refs[i], true
}

// Refs returns every cached ref, parents before children.
func (idx *Index) Refs() []NodeRef {
	return idx.refs
}

func (idx *Index) Len() int {
	return len(idx.refs)
}
