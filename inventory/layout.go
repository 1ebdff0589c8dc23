package inventory

import (
	"fmt"

	"github.com/signadot/nbtedit/tag"
)

// Layout describes one slot store kept in a top-level list of the root
// compound and how its slots are arranged on screen.
type Layout struct {
	// Key is the name of the backing list in the root compound.
	Key string
	// Title labels the store in a tabbed view.
	Title string
	// Grid lists slot numbers row by row.
	Grid [][]int
	// Special enables the special slot panel.
	Special bool
}

var (
	InventoryGrid = [][]int{
		{9, 10, 11, 12, 13, 14, 15, 16, 17},
		{18, 19, 20, 21, 22, 23, 24, 25, 26},
		{27, 28, 29, 30, 31, 32, 33, 34, 35},
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
	}
	EnderGrid = [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{9, 10, 11, 12, 13, 14, 15, 16, 17},
		{18, 19, 20, 21, 22, 23, 24, 25, 26},
	}

	PlayerInventory = Layout{
		Key:     "Inventory",
		Title:   "Inventory",
		Grid:    InventoryGrid,
		Special: true,
	}
	EnderChest = Layout{
		Key:   "EnderItems",
		Title: "Ender Chest",
		Grid:  EnderGrid,
	}
)

// SpecialSlots are always shown in the special panel of a layout with
// Special set, whether or not they hold an item.
var SpecialSlots = []int{103, 102, 101, 100, 150}

var SlotNames = map[int]string{
	100: "Boots",
	101: "Leggings",
	102: "Chestplate",
	103: "Helmet",
	150: "Offhand",
}

// SlotName is the friendly name of slot, or "Slot <n>".
func SlotName(slot int) string {
	if n, ok := SlotNames[slot]; ok {
		return n
	}
	return fmt.Sprintf("Slot %d", slot)
}

// Layouts returns every known layout in display order.
func Layouts() []Layout {
	return []Layout{PlayerInventory, EnderChest}
}

// LayoutFor finds a layout by backing key or by title.
func LayoutFor(name string) (Layout, bool) {
	for _, l := range Layouts() {
		if l.Key == name || l.Title == name {
			return l, true
		}
	}
	return Layout{}, false
}

// Present returns the layouts whose backing key exists in root, in display
// order.  It returns nil when root is not a compound.
func Present(root tag.Tag) []Layout {
	c, ok := root.(*tag.Compound)
	if !ok {
		return nil
	}
	var res []Layout
	for _, l := range Layouts() {
		if c.Has(l.Key) {
			res = append(res, l)
		}
	}
	return res
}

func (l Layout) inGrid(slot int) bool {
	for _, row := range l.Grid {
		for _, s := range row {
			if s == slot {
				return true
			}
		}
	}
	return false
}
