package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nbtedit/edit"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
)

// Mode says how the value of the selection is edited.
type Mode int

const (
	// ModeMessage shows Message instead of an editable value.
	ModeMessage Mode = iota
	// ModeEntry is a single line value.
	ModeEntry
	// ModeText is a multi line value, used for arrays.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeEntry:
		return "entry"
	case ModeText:
		return "text"
	default:
		return "message"
	}
}

const (
	HintInteger   = "Enter an integer value."
	HintFloat     = "Enter a floating point value."
	HintString    = "Strings can contain any characters."
	HintArray     = "Enter comma-separated integers."
	ContainerText = "Container tag – use the buttons below to manage children."
	NoSelection   = "Select a tag to view or edit its value."
)

// Detail describes the selected node as a detail panel shows it.
type Detail struct {
	Path         string
	Kind         tag.Kind
	Name         string
	NameEditable bool

	Mode    Mode
	Value   string
	Hint    string
	Message string

	CanApply  bool
	CanAdd    bool
	CanDelete bool
}

// Detail returns the panel for the selection.  With nothing selected every
// action is disabled.
func (s *Session) Detail() Detail {
	ref, err := s.Selection()
	if err != nil {
		return Detail{Path: "(nothing selected)", Mode: ModeMessage, Message: NoSelection}
	}
	d := Detail{
		Path:      displayPath(ref.Path),
		Kind:      ref.Tag.Kind(),
		CanAdd:    tag.IsContainer(ref.Tag),
		CanDelete: !ref.IsRoot(),
	}
	if k, ok := ref.Key(); ok {
		d.Name, d.NameEditable = k, true
	} else if i, ok := ref.Index(); ok {
		d.Name = strconv.Itoa(i)
	}
	k := ref.Tag.Kind()
	switch {
	case k.IsContainer():
		d.Mode, d.Message = ModeMessage, ContainerText
		d.CanApply = d.NameEditable
		return d
	case k.IsArray():
		d.Mode, d.Hint = ModeText, HintArray
	case k.IsInteger():
		d.Mode, d.Hint = ModeEntry, HintInteger
	case k.IsFloat():
		d.Mode, d.Hint = ModeEntry, HintFloat
	case k == tag.StringKind:
		d.Mode, d.Hint = ModeEntry, HintString
	default:
		d.Mode = ModeEntry
	}
	d.Value, _ = tag.EditableText(ref.Tag)
	d.CanApply = true
	return d
}

// Apply commits the detail panel: the name, for compound entries, and the
// value, coerced to the kind of the selection, for non containers.  Both
// are checked before either is applied.  The selection follows a rename.
func (s *Session) Apply(name, value string) error {
	ref, err := s.Selection()
	if err != nil {
		return err
	}
	p := ref.Path
	key, isEntry := ref.Key()
	name = strings.TrimSpace(name)
	if isEntry {
		if name == "" {
			return fmt.Errorf("%w: compound entries must have a name", edit.ErrEmptyName)
		}
		if name != key && ref.Parent.(*tag.Compound).Has(name) {
			return fmt.Errorf("%w: %q already exists in this compound", edit.ErrDuplicateName, name)
		}
	}
	var v tag.Tag
	if !tag.IsContainer(ref.Tag) {
		if ref.Tag.Kind().IsArray() {
			value = strings.TrimSpace(value)
		}
		v, err = tag.Coerce(ref.Tag.Kind(), value)
		if err != nil {
			return err
		}
	}
	if isEntry && name != key {
		if p, err = edit.Rename(s.doc, p, name); err != nil {
			return err
		}
		s.log.Debug("renamed", "from", displayPath(ref.Path), "to", displayPath(p))
	}
	if v != nil {
		if err := edit.Replace(s.doc, p, v); err != nil {
			s.refresh(p)
			return err
		}
		s.log.Debug("replaced", "path", displayPath(p), "kind", v.Kind())
	}
	s.refresh(p)
	return nil
}

// Delete removes the selection and selects its parent.
func (s *Session) Delete() error {
	ref, err := s.Selection()
	if err != nil {
		return err
	}
	parent, err := edit.Delete(s.doc, ref.Path)
	if err != nil {
		return err
	}
	s.log.Debug("deleted", "path", displayPath(ref.Path))
	s.refresh(parent)
	return nil
}

// SelectionPath returns the selected path and whether anything is selected.
func (s *Session) SelectionPath() (tpath.Path, bool) {
	return s.sel, s.selected
}
