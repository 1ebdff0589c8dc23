package tpath

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Component is one step of a Path: a compound key when Field is set, a
// list index otherwise.
type Component struct {
	Field *string
	Index *int
}

func Field(name string) Component {
	return Component{Field: &name}
}

func Index(i int) Component {
	return Component{Index: &i}
}

func (c Component) IsIndex() bool {
	return c.Index != nil
}

// Key returns the field name of a key component.
func (c Component) Key() (string, bool) {
	if c.Field == nil {
		return "", false
	}
	return *c.Field, true
}

// Pos returns the index of an index component.
func (c Component) Pos() (int, bool) {
	if c.Index == nil {
		return 0, false
	}
	return *c.Index, true
}

func (c Component) Equal(o Component) bool {
	switch {
	case c.Field != nil && o.Field != nil:
		return *c.Field == *o.Field
	case c.Index != nil && o.Index != nil:
		return *c.Index == *o.Index
	default:
		return false
	}
}

// Path addresses a tag from the root of a tree.  The empty path is the
// root itself.
type Path []Component

// Of builds a path from string keys and int indices.
func Of(elts ...any) Path {
	res := make(Path, 0, len(elts))
	for _, e := range elts {
		switch x := e.(type) {
		case string:
			res = append(res, Field(x))
		case int:
			res = append(res, Index(x))
		default:
			panic(fmt.Sprintf("tpath.Of: %T is neither string nor int", e))
		}
	}
	return res
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path of the container holding p.  The root has no
// parent and returns itself.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1:len(p)-1]
}

// Last returns the final component of a non-root path.
func (p Path) Last() (Component, bool) {
	if len(p) == 0 {
		return Component{}, false
	}
	return p[len(p)-1], true
}

// Append returns a new path extending p; p is not modified.
func (p Path) Append(cs ...Component) Path {
	res := make(Path, 0, len(p)+len(cs))
	res = append(res, p...)
	return append(res, cs...)
}

func (p Path) Equal(o Path) bool {
	return slices.EqualFunc(p, o, Component.Equal)
}

// String renders p for display: keys are joined with '.', an index is
// appended as "[i]" to the preceding component, and the root is "".
// Keys are not quoted, so the result is not always parseable; see Quoted.
func (p Path) String() string {
	buf := strings.Builder{}
	for _, c := range p {
		if c.Index != nil {
			fmt.Fprintf(&buf, "[%d]", *c.Index)
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(*c.Field)
	}
	return buf.String()
}

// Quoted renders p in the same syntax as String, quoting keys which
// contain syntax characters.  Parse(p.Quoted()) is equal to p.
func (p Path) Quoted() string {
	buf := strings.Builder{}
	for i, c := range p {
		if c.Index != nil {
			fmt.Fprintf(&buf, "[%d]", *c.Index)
			continue
		}
		if i > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(quoteField(*c.Field))
	}
	return buf.String()
}

func needsQuote(f string) bool {
	return f == "" || strings.ContainsAny(f, ".[]' \t\n\\")
}

func quoteField(f string) string {
	if !needsQuote(f) {
		return f
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(f) + "'"
}

// Parse reads the syntax produced by Quoted: "Inventory[0].id",
// "[2]", "'odd.key'.x".  The empty string is the root.
func Parse(s string) (Path, error) {
	res := Path{}
	for len(s) > 0 {
		switch s[0] {
		case '[':
			i := strings.IndexByte(s, ']')
			if i == -1 {
				return nil, fmt.Errorf("expected '[' <index> ']' in %q", s)
			}
			n, err := strconv.ParseUint(s[1:i], 10, 31)
			if err != nil {
				return nil, fmt.Errorf("bad index %q: %w", s[1:i], err)
			}
			res = append(res, Index(int(n)))
			s = s[i+1:]
		case '.':
			if len(res) == 0 {
				return nil, fmt.Errorf("path may not start with '.'")
			}
			field, rest, err := parseField(s[1:])
			if err != nil {
				return nil, err
			}
			res = append(res, Field(field))
			s = rest
		default:
			if len(res) != 0 {
				return nil, fmt.Errorf("expected '.' or '[' at %q", s)
			}
			field, rest, err := parseField(s)
			if err != nil {
				return nil, err
			}
			res = append(res, Field(field))
			s = rest
		}
	}
	return res, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field at %q", frag)
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of path scanning for \"'\"")
}
