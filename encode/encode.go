package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/nbtedit/format"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

var ErrEncoding = errors.New("encoding error")

// RootLabel is shown for a root stored without a name.
const RootLabel = "(root)"

type EncState struct {
	depth, indent int
	maxDepth      int
	format        format.Format
	wire          bool
	plain         bool
	full          bool

	Color func(tag.Kind, ColorAttr, string) string
}

// Encode writes doc to w.  The text format is an indented tree with one
// line per tag; JSON and YAML write the root in the typed form of
// tag.MarshalJSON unless EncodePlain is given.
func Encode(doc *tree.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, Color: noColor}
	for _, opt := range opts {
		opt(es)
	}
	if doc == nil || doc.Root == nil {
		return fmt.Errorf("%w: empty document", ErrEncoding)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(doc.Root, w, es)
	case format.YAMLFormat:
		return encodeYAML(doc.Root, w, es)
	default:
		name := doc.Name
		if name == "" {
			name = RootLabel
		}
		return encodeText(tree.NodeRef{Tag: doc.Root}, name, w, es)
	}
}

// MustString encodes doc and panics on error.
func MustString(doc *tree.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// Line is the one line text form of ref labelled name, without indent or
// colour.
func Line(ref tree.NodeRef, name string) string {
	es := &EncState{Color: noColor}
	return es.line(ref.Tag, name)
}

func (es *EncState) line(t tag.Tag, name string) string {
	k := t.Kind()
	var b strings.Builder
	attr := FieldColor
	if strings.HasPrefix(name, "[") {
		attr = IndexColor
	}
	b.WriteString(es.Color(k, attr, name))
	b.WriteByte(' ')
	b.WriteString(es.Color(k, TagColor, k.String()))
	b.WriteString(es.Color(k, SepColor, ":"))
	b.WriteByte(' ')
	b.WriteString(es.Color(k, ValueColor, es.value(t)))
	return b.String()
}

func (es *EncState) value(t tag.Tag) string {
	s, ok := t.(tag.String)
	if !ok {
		return tag.Render(t)
	}
	if es.full {
		return strconv.Quote(string(s))
	}
	return strconv.Quote(tag.Render(s))
}

func encodeText(ref tree.NodeRef, name string, w io.Writer, es *EncState) error {
	ind := strings.Repeat(" ", es.indent*es.depth)
	if _, err := io.WriteString(w, ind+es.line(ref.Tag, name)+"\n"); err != nil {
		return err
	}
	if es.maxDepth > 0 && es.depth >= es.maxDepth {
		return nil
	}
	es.depth++
	defer func() { es.depth-- }()
	switch x := ref.Tag.(type) {
	case *tag.Compound:
		for i, k := range x.Keys {
			if err := encodeText(tree.NodeRef{Tag: x.Values[i], Parent: x}, k, w, es); err != nil {
				return err
			}
		}
	case *tag.List:
		for i, v := range x.Values {
			if err := encodeText(tree.NodeRef{Tag: v, Parent: x}, fmt.Sprintf("[%d]", i), w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeJSON(t tag.Tag, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.plain {
		d, err = json.Marshal(tag.Plain(t))
	} else {
		d, err = tag.MarshalJSON(t)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if !es.wire {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		d = buf.Bytes()
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeYAML(t tag.Tag, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(ToYAML(t, es.plain), yaml.Indent(es.indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// ToYAML converts t to values go-yaml marshals with compound key order
// kept.  With plain, kinds are dropped as in tag.Plain.
func ToYAML(t tag.Tag, plain bool) any {
	var v any
	switch x := t.(type) {
	case *tag.Compound:
		ms := make(yaml.MapSlice, 0, x.Len())
		for i, k := range x.Keys {
			ms = append(ms, yaml.MapItem{Key: k, Value: ToYAML(x.Values[i], plain)})
		}
		v = ms
	case *tag.List:
		vs := make([]any, len(x.Values))
		for i, e := range x.Values {
			vs[i] = ToYAML(e, plain)
		}
		v = vs
	default:
		v = tag.Plain(t)
	}
	if plain {
		return v
	}
	res := yaml.MapSlice{{Key: "type", Value: t.Kind().String()}}
	if l, ok := t.(*tag.List); ok {
		res = append(res, yaml.MapItem{Key: "subtype", Value: l.Subtype.String()})
	}
	return append(res, yaml.MapItem{Key: "value", Value: v})
}
