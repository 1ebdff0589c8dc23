package edit

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/nbtedit/debug"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
	"github.com/signadot/nbtedit/tree"
)

var (
	ErrEmptyName        = errors.New("name must not be blank")
	ErrDuplicateName    = errors.New("name already exists")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrRoot             = errors.New("operation not allowed on the root")
	ErrNotContainer     = errors.New("not a container")
	ErrNotCompoundEntry = errors.New("not a compound entry")
	ErrNoDocumentRoot   = errors.New("document has no root")
)

func resolve(doc *tree.Document, p tpath.Path) (tree.NodeRef, error) {
	if doc.Root == nil {
		return tree.NodeRef{}, ErrNoDocumentRoot
	}
	return tree.Resolve(doc.Root, p)
}

// Rename moves the compound entry at p to newName, at the end of its
// compound.  Renaming an entry to its current name changes nothing.  The
// returned path addresses the entry after the rename.
func Rename(doc *tree.Document, p tpath.Path, newName string) (tpath.Path, error) {
	ref, err := resolve(doc, p)
	if err != nil {
		return nil, err
	}
	key, ok := ref.Key()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCompoundEntry, displayPath(p))
	}
	if strings.TrimSpace(newName) == "" {
		return nil, ErrEmptyName
	}
	if newName == key {
		return p, nil
	}
	parent := ref.Parent.(*tag.Compound)
	if parent.Has(newName) {
		return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, newName, displayPath(p.Parent()))
	}
	parent.Remove(key)
	parent.Set(newName, ref.Tag)
	res := p.Parent().Append(tpath.Field(newName))
	if debug.Edit() {
		debug.Logf("rename %s -> %s\n", p, res)
	}
	return res, nil
}

// Replace puts v where the tag at p is.  At the root it replaces the
// document root.  Inside a typed list v must have the list's subtype.
func Replace(doc *tree.Document, p tpath.Path, v tag.Tag) error {
	ref, err := resolve(doc, p)
	if err != nil {
		return err
	}
	switch parent := ref.Parent.(type) {
	case nil:
		doc.Root = v
	case *tag.Compound:
		key, _ := ref.Key()
		parent.Set(key, v)
	case *tag.List:
		if v.Kind() != parent.Subtype {
			return fmt.Errorf("%w: cannot put %s into list of %s", ErrTypeMismatch, v.Kind(), parent.Subtype)
		}
		i, _ := ref.Index()
		parent.Values[i] = v
	default:
		panic(fmt.Sprintf("parent %T is not a container", ref.Parent))
	}
	if debug.Edit() {
		debug.Logf("replace %s with %s\n", displayPath(p), v.Kind())
	}
	return nil
}

// InsertIntoCompound adds name to the end of the compound at p.
func InsertIntoCompound(doc *tree.Document, p tpath.Path, name string, v tag.Tag) (tpath.Path, error) {
	ref, err := resolve(doc, p)
	if err != nil {
		return nil, err
	}
	c, ok := ref.Tag.(*tag.Compound)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not Compound", ErrNotContainer, displayPath(p), ref.Tag.Kind())
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if c.Has(name) {
		return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, name, displayPath(p))
	}
	c.Set(name, v)
	return p.Append(tpath.Field(name)), nil
}

// InsertIntoList appends v to the list at p.  An untyped list takes the
// kind of its first element as its subtype; after that only elements of
// that kind are accepted.
func InsertIntoList(doc *tree.Document, p tpath.Path, v tag.Tag) (tpath.Path, error) {
	return InsertIntoListAt(doc, p, -1, v)
}

// InsertIntoListAt inserts v into the list at p so that it ends up at
// index i, shifting later elements up.  A negative i appends.  Subtype
// rules are those of InsertIntoList.
func InsertIntoListAt(doc *tree.Document, p tpath.Path, i int, v tag.Tag) (tpath.Path, error) {
	ref, err := resolve(doc, p)
	if err != nil {
		return nil, err
	}
	l, ok := ref.Tag.(*tag.List)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not List", ErrNotContainer, displayPath(p), ref.Tag.Kind())
	}
	if i < 0 {
		i = l.Len()
	}
	if i > l.Len() {
		return nil, fmt.Errorf("%w: index %d in list of %d items", tree.ErrNotFound, i, l.Len())
	}
	if !l.Untyped() && v.Kind() != l.Subtype {
		return nil, fmt.Errorf("%w: cannot add %s to list of %s", ErrTypeMismatch, v.Kind(), l.Subtype)
	}
	if l.Untyped() {
		l.Subtype = v.Kind()
		if debug.Edit() {
			debug.Logf("list %s typed as %s\n", displayPath(p), l.Subtype)
		}
	}
	l.Values = slices.Insert(l.Values, i, v)
	return p.Append(tpath.Index(i)), nil
}

// Insert adds v to the container at p: under name for a compound, at the
// end for a list, where name is ignored.
func Insert(doc *tree.Document, p tpath.Path, name string, v tag.Tag) (tpath.Path, error) {
	ref, err := resolve(doc, p)
	if err != nil {
		return nil, err
	}
	switch ref.Tag.(type) {
	case *tag.Compound:
		return InsertIntoCompound(doc, p, name, v)
	case *tag.List:
		return InsertIntoList(doc, p, v)
	default:
		return nil, fmt.Errorf("%w: %s is %s", ErrNotContainer, displayPath(p), ref.Tag.Kind())
	}
}

// Put sets name in the compound at p, replacing an existing value in
// place or appending a new entry.
func Put(doc *tree.Document, p tpath.Path, name string, v tag.Tag) (tpath.Path, error) {
	ref, err := resolve(doc, p)
	if err != nil {
		return nil, err
	}
	c, ok := ref.Tag.(*tag.Compound)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not Compound", ErrNotContainer, displayPath(p), ref.Tag.Kind())
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	c.Set(name, v)
	return p.Append(tpath.Field(name)), nil
}

// Delete removes the tag at p from its container.  Later list elements
// move down one index.  The parent path is returned.
func Delete(doc *tree.Document, p tpath.Path) (tpath.Path, error) {
	ref, err := resolve(doc, p)
	if err != nil {
		return nil, err
	}
	switch parent := ref.Parent.(type) {
	case nil:
		return nil, fmt.Errorf("%w: cannot delete", ErrRoot)
	case *tag.Compound:
		key, _ := ref.Key()
		parent.Remove(key)
	case *tag.List:
		i, _ := ref.Index()
		parent.Values = slices.Delete(parent.Values, i, i+1)
	default:
		panic(fmt.Sprintf("parent %T is not a container", ref.Parent))
	}
	if debug.Edit() {
		debug.Logf("delete %s\n", displayPath(p))
	}
	return p.Parent(), nil
}

// SortList stably reorders the list at p by less.
func SortList(doc *tree.Document, p tpath.Path, less func(a, b tag.Tag) bool) error {
	ref, err := resolve(doc, p)
	if err != nil {
		return err
	}
	l, ok := ref.Tag.(*tag.List)
	if !ok {
		return fmt.Errorf("%w: %s is %s, not List", ErrNotContainer, displayPath(p), ref.Tag.Kind())
	}
	slices.SortStableFunc(l.Values, func(a, b tag.Tag) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	return nil
}

// AllowedKinds lists the kinds which may be inserted into container: any
// kind for a compound or an untyped list, only the subtype for a typed
// list, and nothing for non containers.
func AllowedKinds(container tag.Tag) []tag.Kind {
	switch x := container.(type) {
	case *tag.Compound:
		return tag.Kinds()
	case *tag.List:
		if x.Untyped() {
			return tag.Kinds()
		}
		return []tag.Kind{x.Subtype}
	default:
		return nil
	}
}

func displayPath(p tpath.Path) string {
	if p.IsRoot() {
		return "(root)"
	}
	return p.String()
}
