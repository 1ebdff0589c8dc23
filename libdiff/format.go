package libdiff

import (
	"strings"

	"github.com/signadot/nbtedit/tag"
)

// Format writes one line per change:
//
//	+ Pos[3]: Double 4.0
//	- Inventory[0]: Compound 2 entries
//	~ Name: "St[-eve-]{+ella+}"
//	! Level: Int 3 -> String "3"
//
// Changed strings show their character differences.
func Format(changes []Change, colors bool) string {
	var b strings.Builder
	for _, c := range changes {
		b.WriteString(c.Op.Symbol())
		b.WriteByte(' ')
		if c.Path.IsRoot() {
			b.WriteString("(root)")
		} else {
			b.WriteString(c.Path.String())
		}
		b.WriteString(": ")
		switch c.Op {
		case OpAdd:
			b.WriteString(summary(c.To))
		case OpRemove:
			b.WriteString(summary(c.From))
		case OpChange:
			fs, fok := c.From.(tag.String)
			ts, tok := c.To.(tag.String)
			if fok && tok {
				b.WriteString(`"` + DiffText(string(fs), string(ts), colors) + `"`)
				break
			}
			b.WriteString(summary(c.From) + " -> " + summary(c.To))
		case OpKind:
			b.WriteString(summary(c.From) + " -> " + summary(c.To))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func summary(t tag.Tag) string {
	if s, ok := t.(tag.String); ok {
		return t.Kind().String() + ` "` + tag.Render(s) + `"`
	}
	if tag.IsContainer(t) {
		return t.Kind().String() + " " + tag.Render(t)
	}
	if txt, ok := tag.EditableText(t); ok && t.Kind().IsArray() {
		return t.Kind().String() + " [" + txt + "]"
	}
	return t.Kind().String() + " " + tag.Render(t)
}
