package encode

import (
	"github.com/signadot/nbtedit/format"
	"github.com/signadot/nbtedit/tag"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Depth limits how many container levels the text format expands; deeper
// containers show only their summary.  0 means no limit.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire makes JSON output compact.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodePlain drops kind information from JSON and YAML output, giving
// bare numbers, strings, arrays and objects.
func EncodePlain(v bool) EncodeOption {
	return func(es *EncState) { es.plain = v }
}

// EncodeFull shows full strings in the text format instead of truncating
// them.
func EncodeFull(v bool) EncodeOption {
	return func(es *EncState) { es.full = v }
}

func noColor(_ tag.Kind, _ ColorAttr, s string) string { return s }
