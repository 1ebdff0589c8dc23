package inventory

import (
	"fmt"
	"strings"

	"github.com/signadot/nbtedit/debug"
	"github.com/signadot/nbtedit/edit"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
	"github.com/signadot/nbtedit/tree"
)

// Action is the outcome of editing one slot: Delete, Save or Cancelled.
type Action interface {
	isAction()
}

type Delete struct{}

type Save struct {
	Slot  int
	ID    string
	Count int
}

type Cancelled struct{}

func (Delete) isAction()    {}
func (Save) isAction()      {}
func (Cancelled) isAction() {}

// Request describes a slot edit to whoever collects the Action.
type Request struct {
	Layout Layout
	Slot   int
	Entry  *Entry
}

// Defaults pre-fills a Save from the entry in the slot, if any.
func (r Request) Defaults() Save {
	s := Save{Slot: r.Slot, Count: 1}
	if r.Entry == nil {
		return s
	}
	if v, ok := r.Entry.Item.Get("id"); ok {
		if str, ok := v.(tag.String); ok {
			s.ID = string(str)
		} else {
			s.ID = tag.Render(v)
		}
	}
	s.Count = r.Entry.Count()
	return s
}

// CanDelete reports whether Delete is a meaningful action.
func (r Request) CanDelete() bool {
	return r.Entry != nil
}

// Backing returns the list behind layout in doc and its path.
func Backing(doc *tree.Document, layout Layout) (*tag.List, tpath.Path, error) {
	p := tpath.Of(layout.Key)
	if doc.Root == nil {
		return nil, nil, edit.ErrNoDocumentRoot
	}
	ref, err := tree.Resolve(doc.Root, p)
	if err != nil {
		return nil, nil, err
	}
	l, ok := ref.Tag.(*tag.List)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s is %s", ErrNotInventory, layout.Key, ref.Tag.Kind())
	}
	if err := checkList(l); err != nil {
		return nil, nil, err
	}
	return l, p, nil
}

// NewRequest looks up slot in the store of layout.
func NewRequest(doc *tree.Document, layout Layout, slot int) (Request, error) {
	l, _, err := Backing(doc, layout)
	if err != nil {
		return Request{}, err
	}
	proj, err := Project(l)
	if err != nil {
		return Request{}, err
	}
	r := Request{Layout: layout, Slot: slot}
	if e, ok := proj[slot]; ok {
		r.Entry = &e
	}
	return r, nil
}

// Apply carries out a on the entry shown in slot of the store of layout.
// Every check runs before the backing list is touched, so a failed Apply
// leaves doc unchanged.  After a Save the list is sorted by slot.  The
// path of the backing list is returned for re-selection.
//
// Any projection of the store taken before Apply is stale afterwards.
func Apply(doc *tree.Document, layout Layout, slot int, a Action) (tpath.Path, error) {
	l, lp, err := Backing(doc, layout)
	if err != nil {
		return nil, err
	}
	proj, err := Project(l)
	if err != nil {
		return nil, err
	}
	cur, hasCur := proj[slot]
	switch x := a.(type) {
	case Cancelled:
		return lp, nil
	case Delete:
		if !hasCur {
			return nil, fmt.Errorf("%w: %s", ErrNothingToDelete, SlotName(slot))
		}
		if _, err := edit.Delete(doc, lp.Append(tpath.Index(cur.Index))); err != nil {
			return nil, err
		}
		if debug.Inventory() {
			debug.Logf("%s: deleted slot %d\n", layout.Key, slot)
		}
		return lp, nil
	case Save:
		if err := x.validate(); err != nil {
			return nil, err
		}
		for i, v := range l.Values {
			if hasCur && i == cur.Index {
				continue
			}
			if SlotOf(v.(*tag.Compound)) == x.Slot {
				return nil, fmt.Errorf("%w: slot %d", ErrSlotConflict, x.Slot)
			}
		}
		if hasCur {
			err = x.update(doc, lp.Append(tpath.Index(cur.Index)))
		} else {
			_, err = edit.InsertIntoList(doc, lp, x.item())
		}
		if err != nil {
			return nil, err
		}
		err = edit.SortList(doc, lp, func(a, b tag.Tag) bool {
			return SlotOf(a.(*tag.Compound)) < SlotOf(b.(*tag.Compound))
		})
		if err != nil {
			return nil, err
		}
		if debug.Inventory() {
			debug.Logf("%s: saved slot %d as %d %s x%d\n", layout.Key, slot, x.Slot, x.ID, x.Count)
		}
		return lp, nil
	default:
		panic(fmt.Sprintf("unknown action %T", a))
	}
}

func (s Save) validate() error {
	if s.Count < 0 || s.Count > MaxCount {
		return fmt.Errorf("%w: %d", ErrInvalidCount, s.Count)
	}
	if strings.TrimSpace(s.ID) == "" {
		return ErrInvalidID
	}
	if s.Slot < 0 || s.Slot > MaxSlot {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, s.Slot)
	}
	return nil
}

func (s Save) item() *tag.Compound {
	c := tag.NewCompound()
	c.Set("Slot", slotTag(s.Slot))
	c.Set("id", tag.String(strings.TrimSpace(s.ID)))
	c.Set("Count", tag.Byte(s.Count))
	return c
}

func (s Save) update(doc *tree.Document, p tpath.Path) error {
	item := s.item()
	for i, k := range item.Keys {
		if _, err := edit.Put(doc, p, k, item.Values[i]); err != nil {
			return err
		}
	}
	return nil
}
