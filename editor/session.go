package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/signadot/nbtedit/tag/tpath"
	"github.com/signadot/nbtedit/tree"
)

var (
	ErrNoDocument  = errors.New("no document loaded")
	ErrNoSelection = errors.New("nothing selected")
	ErrNoFile      = errors.New("no file to save to")
	ErrCancelled   = errors.New("cancelled")
)

// Codec turns bytes into documents and back.  *nbt.Codec is one.
type Codec interface {
	Load(d []byte) (*tree.Document, error)
	Save(doc *tree.Document) ([]byte, error)
}

// Session is one editor over one document.  It keeps the path index and
// the selection in step with the document: every mutation goes through
// the session, which rebuilds the index before anything reads it again.
//
// A Session is not safe for concurrent use.
type Session struct {
	ID   string
	File string

	codec Codec
	log   *slog.Logger

	doc *tree.Document
	idx *tree.Index

	selected bool
	sel      tpath.Path
}

type SessionConfig struct {
	Codec Codec
	Log   *slog.Logger
}

func NewSession(cfg *SessionConfig) *Session {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	id := uuid.Must(uuid.NewV7()).String()
	return &Session{
		ID:    id,
		codec: cfg.Codec,
		log:   log.With("session", id),
	}
}

// Open replaces the session document with the one decoded from d and
// selects its root.  Codec errors are returned unchanged.
func (s *Session) Open(d []byte) error {
	doc, err := s.codec.Load(d)
	if err != nil {
		return err
	}
	s.SetDocument(doc)
	return nil
}

// OpenFile opens the document stored in path and remembers path for Save.
func (s *Session) OpenFile(path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := s.Open(d); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.File = path
	s.log.Info("opened", "file", path)
	return nil
}

// SetDocument makes doc the session document and selects its root.
func (s *Session) SetDocument(doc *tree.Document) {
	s.doc = doc
	s.refresh(tpath.Path{})
}

func (s *Session) Document() *tree.Document {
	return s.doc
}

// Save encodes the session document.
func (s *Session) Save() ([]byte, error) {
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	return s.codec.Save(s.doc)
}

// SaveFile writes the document to path, or to the file it was opened from
// when path is empty.  A successful save to a new path makes it the
// session file.
func (s *Session) SaveFile(path string) error {
	if path == "" {
		path = s.File
	}
	if path == "" {
		return ErrNoFile
	}
	d, err := s.Save()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, d, 0o644); err != nil {
		return err
	}
	s.File = path
	s.log.Info("saved", "file", path, "bytes", len(d))
	return nil
}

// Select makes the node at p the selection.
func (s *Session) Select(p tpath.Path) error {
	if s.doc == nil {
		return ErrNoDocument
	}
	if _, ok := s.Lookup(p); !ok {
		return fmt.Errorf("%w: %s", tree.ErrNotFound, displayPath(p))
	}
	s.selected, s.sel = true, p
	return nil
}

// ClearSelection leaves nothing selected.
func (s *Session) ClearSelection() {
	s.selected, s.sel = false, nil
}

// Selection returns the selected node.
func (s *Session) Selection() (tree.NodeRef, error) {
	if s.doc == nil {
		return tree.NodeRef{}, ErrNoDocument
	}
	if !s.selected {
		return tree.NodeRef{}, ErrNoSelection
	}
	ref, ok := s.Lookup(s.sel)
	if !ok {
		return tree.NodeRef{}, fmt.Errorf("%w: %s", tree.ErrNotFound, displayPath(s.sel))
	}
	return ref, nil
}

// Lookup finds p in the current index.
func (s *Session) Lookup(p tpath.Path) (tree.NodeRef, bool) {
	if s.idx == nil {
		return tree.NodeRef{}, false
	}
	return s.idx.Lookup(p)
}

// Refresh rebuilds the index and keeps the selection if its path still
// resolves.
func (s *Session) Refresh() {
	if s.doc == nil || s.doc.Root == nil {
		s.idx = nil
		s.ClearSelection()
		return
	}
	s.idx = tree.BuildIndex(s.doc.Root)
	if !s.selected {
		return
	}
	if _, ok := s.idx.Lookup(s.sel); !ok {
		s.ClearSelection()
	}
}

// refresh rebuilds the index selecting p, or nothing if p does not
// resolve.
func (s *Session) refresh(p tpath.Path) {
	s.selected, s.sel = true, p
	s.Refresh()
}

func displayPath(p tpath.Path) string {
	if p.IsRoot() {
		return "(root)"
	}
	return p.String()
}
