package editor

import (
	"fmt"

	"github.com/signadot/nbtedit/inventory"
)

// SlotPrompter collects the action for one inventory slot.  It returns
// inventory.Cancelled{} (or ErrCancelled) when the user gives up.
type SlotPrompter interface {
	PromptSlot(req inventory.Request) (inventory.Action, error)
}

type SlotPrompterFunc func(inventory.Request) (inventory.Action, error)

func (f SlotPrompterFunc) PromptSlot(req inventory.Request) (inventory.Action, error) {
	return f(req)
}

// Inventories renders every inventory store in the document, player
// inventory first.  The result is empty when the document has none.
func (s *Session) Inventories() ([]*inventory.View, error) {
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	var res []*inventory.View
	for _, layout := range inventory.Present(s.doc.Root) {
		l, _, err := inventory.Backing(s.doc, layout)
		if err != nil {
			return nil, err
		}
		v, err := inventory.Render(layout, l)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// EditSlot prompts for an action on slot of the store named store ("Inventory"
// or "EnderItems") and applies it.  The store's list becomes the selection.
func (s *Session) EditSlot(store string, slot int, p SlotPrompter) error {
	if s.doc == nil {
		return ErrNoDocument
	}
	layout, ok := inventory.LayoutFor(store)
	if !ok {
		return fmt.Errorf("%w: %q", inventory.ErrNotInventory, store)
	}
	req, err := inventory.NewRequest(s.doc, layout, slot)
	if err != nil {
		return err
	}
	a, err := p.PromptSlot(req)
	if err != nil {
		return err
	}
	if _, ok := a.(inventory.Cancelled); ok {
		return ErrCancelled
	}
	lp, err := inventory.Apply(s.doc, layout, slot, a)
	if err != nil {
		return err
	}
	s.log.Debug("slot edited", "store", layout.Key, "slot", slot, "action", fmt.Sprintf("%T", a))
	s.refresh(lp)
	return nil
}
