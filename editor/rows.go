package editor

import (
	"github.com/signadot/nbtedit/encode"
	"github.com/signadot/nbtedit/tree"
)

// Row is one line of the tree view.
type Row struct {
	Ref      tree.NodeRef
	Depth    int
	Label    string
	Line     string
	Selected bool
}

// Rows lists the tree view of the document, parents before children.  The
// root is labelled with the document name.
func (s *Session) Rows() []Row {
	if s.idx == nil {
		return nil
	}
	refs := s.idx.Refs()
	res := make([]Row, 0, len(refs))
	for _, ref := range refs {
		label := ref.Name()
		if ref.IsRoot() {
			label = s.doc.Name
			if label == "" {
				label = encode.RootLabel
			}
		}
		res = append(res, Row{
			Ref:      ref,
			Depth:    ref.Depth(),
			Label:    label,
			Line:     encode.Line(ref, label),
			Selected: s.selected && ref.Path.Equal(s.sel),
		})
	}
	return res
}
