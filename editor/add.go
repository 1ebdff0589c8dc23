package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/nbtedit/edit"
	"github.com/signadot/nbtedit/tag"
)

var ErrMissingValue = errors.New("missing value")

// ChildRequest asks for a new child of the selected container.
type ChildRequest struct {
	// RequireName is set for compounds, whose children are named.
	RequireName bool
	Kinds       []tag.Kind
	// Preselected is the kind offered first.  When KindFixed is set it
	// is the only kind allowed.
	Preselected tag.Kind
	KindFixed   bool
}

// ChildInput is what a ChildPrompter collected.
type ChildInput struct {
	Name  string
	Kind  tag.Kind
	Value string
}

// ChildPrompter collects a new child.  It returns ErrCancelled when the
// user gives up.  Nothing is changed until it returns.
type ChildPrompter interface {
	PromptChild(req ChildRequest) (ChildInput, error)
}

// ChildPrompterFunc adapts a function to ChildPrompter.
type ChildPrompterFunc func(ChildRequest) (ChildInput, error)

func (f ChildPrompterFunc) PromptChild(req ChildRequest) (ChildInput, error) {
	return f(req)
}

// ChildRequest describes what may be added to the selection.
func (s *Session) ChildRequest() (ChildRequest, error) {
	ref, err := s.Selection()
	if err != nil {
		return ChildRequest{}, err
	}
	kinds := edit.AllowedKinds(ref.Tag)
	if kinds == nil {
		return ChildRequest{}, fmt.Errorf("%w: %s is %s", edit.ErrNotContainer, displayPath(ref.Path), ref.Tag.Kind())
	}
	req := ChildRequest{Kinds: kinds, Preselected: kinds[0]}
	switch x := ref.Tag.(type) {
	case *tag.Compound:
		req.RequireName = true
	case *tag.List:
		req.KindFixed = !x.Untyped()
	}
	return req, nil
}

// AddChild prompts for a child of the selected container and adds it.
// The new child becomes the selection.
func (s *Session) AddChild(p ChildPrompter) error {
	req, err := s.ChildRequest()
	if err != nil {
		return err
	}
	in, err := p.PromptChild(req)
	if err != nil {
		return err
	}
	return s.addChild(req, in)
}

func (s *Session) addChild(req ChildRequest, in ChildInput) error {
	ref, err := s.Selection()
	if err != nil {
		return err
	}
	name := strings.TrimSpace(in.Name)
	if req.RequireName && name == "" {
		return fmt.Errorf("%w: provide a unique name for the new tag", edit.ErrEmptyName)
	}
	if req.KindFixed && in.Kind != req.Preselected {
		return fmt.Errorf("%w: list holds %s, not %s", edit.ErrTypeMismatch, req.Preselected, in.Kind)
	}
	value := strings.TrimSpace(in.Value)
	if !in.Kind.IsContainer() && value == "" {
		return fmt.Errorf("%w: enter a value for the new tag", ErrMissingValue)
	}
	v, err := tag.Coerce(in.Kind, value)
	if err != nil {
		return err
	}
	p, err := edit.Insert(s.doc, ref.Path, name, v)
	if err != nil {
		return err
	}
	s.log.Debug("added", "path", displayPath(p), "kind", v.Kind())
	s.refresh(p)
	return nil
}
