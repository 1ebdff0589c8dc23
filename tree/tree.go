package tree

import (
	"errors"
	"fmt"

	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
)

var ErrNotFound = errors.New("not found")

// Document is a loaded tag tree: its root and the name the root was stored
// under.
type Document struct {
	Name string
	Root tag.Tag
}

// NodeRef identifies a tag by the path used to reach it.  Parent is the
// container holding Tag and is nil only for the root.
//
// A NodeRef is a snapshot: after any structural change to the tree it must
// be recomputed by resolving Path again.
type NodeRef struct {
	Tag    tag.Tag
	Parent tag.Tag
	Path   tpath.Path
}

func (r NodeRef) IsRoot() bool {
	return r.Parent == nil
}

// Key returns the name of r within its parent compound.
func (r NodeRef) Key() (string, bool) {
	if _, ok := r.Parent.(*tag.Compound); !ok {
		return "", false
	}
	last, _ := r.Path.Last()
	return last.Key()
}

// Index returns the position of r within its parent list.
func (r NodeRef) Index() (int, bool) {
	if _, ok := r.Parent.(*tag.List); !ok {
		return 0, false
	}
	last, _ := r.Path.Last()
	return last.Pos()
}

// Name is the label of r in a tree view: its key, "[i]" for list
// elements, and "" for the root.
func (r NodeRef) Name() string {
	if k, ok := r.Key(); ok {
		return k
	}
	if i, ok := r.Index(); ok {
		return fmt.Sprintf("[%d]", i)
	}
	return ""
}

// Resolve walks p from root.  It fails with ErrNotFound when a step
// passes through a non container, names a missing key or is out of
// bounds.
func Resolve(root tag.Tag, p tpath.Path) (NodeRef, error) {
	ref := NodeRef{Tag: root, Path: tpath.Path{}}
	for i, c := range p {
		child, err := step(ref.Tag, c)
		if err != nil {
			return NodeRef{}, fmt.Errorf("%w: %s: %w", ErrNotFound, p[:i+1].String(), err)
		}
		ref = NodeRef{Tag: child, Parent: ref.Tag, Path: p[: i+1 : i+1]}
	}
	return ref, nil
}

func step(t tag.Tag, c tpath.Component) (tag.Tag, error) {
	switch x := t.(type) {
	case *tag.Compound:
		k, ok := c.Key()
		if !ok {
			return nil, fmt.Errorf("index [%d] into Compound", *c.Index)
		}
		v, ok := x.Get(k)
		if !ok {
			return nil, fmt.Errorf("no key %q", k)
		}
		return v, nil
	case *tag.List:
		i, ok := c.Pos()
		if !ok {
			return nil, fmt.Errorf("key %q into List", *c.Field)
		}
		if i < 0 || i >= x.Len() {
			return nil, fmt.Errorf("index out of bounds %d (len %d)", i, x.Len())
		}
		return x.Values[i], nil
	default:
		return nil, fmt.Errorf("%s is not a container", t.Kind())
	}
}

// Walk calls fn on every tag under root, parents before children and
// children in container order.  Returning false from fn skips the
// children of that tag.
func Walk(root tag.Tag, fn func(NodeRef) (bool, error)) error {
	return walk(NodeRef{Tag: root, Path: tpath.Path{}}, fn)
}

func walk(ref NodeRef, fn func(NodeRef) (bool, error)) error {
	dive, err := fn(ref)
	if err != nil || !dive {
		return err
	}
	switch x := ref.Tag.(type) {
	case *tag.Compound:
		for i, k := range x.Keys {
			child := NodeRef{Tag: x.Values[i], Parent: x, Path: ref.Path.Append(tpath.Field(k))}
			if err := walk(child, fn); err != nil {
				return err
			}
		}
	case *tag.List:
		for i, v := range x.Values {
			child := NodeRef{Tag: v, Parent: x, Path: ref.Path.Append(tpath.Index(i))}
			if err := walk(child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Depth is the number of components in the path of r.
func (r NodeRef) Depth() int {
	return len(r.Path)
}
