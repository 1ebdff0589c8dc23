package inventory

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/nbtedit/debug"
	"github.com/signadot/nbtedit/tag"
)

var (
	ErrInvalidCount    = errors.New("count must be between 0 and 64")
	ErrInvalidID       = errors.New("item id must not be blank")
	ErrInvalidSlot     = errors.New("slot must be between 0 and 255")
	ErrSlotConflict    = errors.New("slot already contains an item")
	ErrNothingToDelete = errors.New("no item to delete in this slot")
	ErrNotInventory    = errors.New("not an inventory list")
)

const (
	MaxCount = 64
	MaxSlot  = 255
)

// Entry is one item compound of a backing list together with its position.
type Entry struct {
	Slot  int
	Index int
	Item  *tag.Compound
}

// ID returns the item identifier, or "Unknown" when the entry has none.
func (e Entry) ID() string {
	v, ok := e.Item.Get("id")
	if !ok {
		return "Unknown"
	}
	if s, ok := v.(tag.String); ok {
		return string(s)
	}
	return tag.Render(v)
}

// Count returns the item count, 1 when absent or not an integer.
func (e Entry) Count() int {
	v, ok := e.Item.Get("Count")
	if !ok {
		return 1
	}
	n, ok := tag.AsInt64(v)
	if !ok {
		return 1
	}
	return int(n)
}

// Projection maps slot numbers to the entry shown there.
type Projection map[int]Entry

// Slots returns the occupied slots in ascending order.
func (p Projection) Slots() []int {
	res := make([]int, 0, len(p))
	for s := range p {
		res = append(res, s)
	}
	slices.Sort(res)
	return res
}

// SlotOf reads the Slot of an item compound.  A missing or non integer
// Slot reads as 0.  Slots are bytes on disk, so a value in [-128, -1] of
// any integer kind reads as unsigned: the offhand value -106 reads as 150.
func SlotOf(item *tag.Compound) int {
	v, ok := item.Get("Slot")
	if !ok {
		return 0
	}
	n, ok := tag.AsInt64(v)
	if !ok {
		return 0
	}
	if n >= -128 && n < 0 {
		n += 256
	}
	return int(n)
}

func slotTag(slot int) tag.Tag {
	return tag.Byte(int8(uint8(slot)))
}

// Project builds the slot view of a backing list.  Entries are not assumed
// to have distinct slots: when two share one, the later entry wins.
func Project(l *tag.List) (Projection, error) {
	if err := checkList(l); err != nil {
		return nil, err
	}
	res := make(Projection, l.Len())
	for i, v := range l.Values {
		item := v.(*tag.Compound)
		slot := SlotOf(item)
		if prev, ok := res[slot]; ok && debug.Inventory() {
			debug.Logf("slot %d: entry %d shadows entry %d\n", slot, i, prev.Index)
		}
		res[slot] = Entry{Slot: slot, Index: i, Item: item}
	}
	return res, nil
}

func checkList(l *tag.List) error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrNotInventory)
	}
	if l.Untyped() || l.Subtype == tag.CompoundKind {
		return nil
	}
	return fmt.Errorf("%w: list of %s", ErrNotInventory, l.Subtype)
}

// Cell is one slot button of a rendered store.
type Cell struct {
	Slot  int
	Name  string
	Entry *Entry
}

// Text is the two line label of c: its name, then "Empty" or the item
// id and count.
func (c Cell) Text() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('\n')
	if c.Entry == nil {
		b.WriteString("Empty")
		return b.String()
	}
	fmt.Fprintf(&b, "%s ×%d", c.Entry.ID(), c.Entry.Count())
	return b.String()
}

// View is a rendered store: the fixed grid and the special slot panel
// sorted by slot number.
type View struct {
	Layout  Layout
	Grid    [][]Cell
	Special []Cell
}

// Render projects l and lays it out with layout.  With layout.Special,
// the special panel holds SpecialSlots plus every occupied slot outside
// the grid.
func Render(layout Layout, l *tag.List) (*View, error) {
	proj, err := Project(l)
	if err != nil {
		return nil, err
	}
	v := &View{Layout: layout, Grid: make([][]Cell, len(layout.Grid))}
	for r, row := range layout.Grid {
		v.Grid[r] = make([]Cell, len(row))
		for c, slot := range row {
			v.Grid[r][c] = proj.cell(slot)
		}
	}
	if !layout.Special {
		return v, nil
	}
	special := slices.Clone(SpecialSlots)
	for _, slot := range proj.Slots() {
		if !layout.inGrid(slot) && !slices.Contains(special, slot) {
			special = append(special, slot)
		}
	}
	slices.Sort(special)
	for _, slot := range special {
		v.Special = append(v.Special, proj.cell(slot))
	}
	return v, nil
}

func (p Projection) cell(slot int) Cell {
	c := Cell{Slot: slot, Name: SlotName(slot)}
	if e, ok := p[slot]; ok {
		c.Entry = &e
	}
	return c
}
