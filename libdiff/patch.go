package libdiff

import (
	"fmt"

	"github.com/signadot/nbtedit/edit"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

// Apply carries out changes on doc in order through the edit package.
// Values are cloned, so changes may be applied more than once.  Apply
// stops at the first change that does not fit doc; earlier changes stay
// applied.
func Apply(doc *tree.Document, changes []Change) error {
	for i, c := range changes {
		if err := apply(doc, c); err != nil {
			return fmt.Errorf("change %d (%s %s): %w", i, c.Op, c.Path, err)
		}
	}
	return nil
}

func apply(doc *tree.Document, c Change) error {
	switch c.Op {
	case OpRemove:
		_, err := edit.Delete(doc, c.Path)
		return err
	case OpChange, OpKind:
		return edit.Replace(doc, c.Path, tag.Clone(c.To))
	case OpAdd:
		last, ok := c.Path.Last()
		if !ok {
			return edit.ErrRoot
		}
		parent := c.Path.Parent()
		if i, ok := last.Pos(); ok {
			_, err := edit.InsertIntoListAt(doc, parent, i, tag.Clone(c.To))
			return err
		}
		k, _ := last.Key()
		_, err := edit.InsertIntoCompound(doc, parent, k, tag.Clone(c.To))
		return err
	default:
		panic(fmt.Sprintf("unknown op %d", c.Op))
	}
}
