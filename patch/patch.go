// Package patch applies RFC 6902 JSON patches to documents.
//
// Patches address the typed JSON form of the root (see tag.MarshalJSON),
// so the Health float of a player file is /value/Health/value and the
// first inventory item is /value/Inventory/value/0.  Adding a tag means
// adding its typed object:
//
//	[{"op": "add", "path": "/value/XpLevel", "value": {"type": "Int", "value": 30}}]
package patch

import (
	"errors"
	"fmt"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/signadot/nbtedit/debug"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

var ErrPatch = errors.New("patch error")

// Apply returns a new document: doc with patchJSON applied.  doc is left
// unchanged.  Compound keys present before keep their order; keys the
// patch adds follow them in lexical order.
func Apply(doc *tree.Document, patchJSON []byte) (*tree.Document, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding patch: %w", ErrPatch, err)
	}
	d, err := tag.MarshalJSON(doc.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch: applying %d ops\n", len(ops))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	root, err := tag.UnmarshalJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: result is not a tag: %w", ErrPatch, err)
	}
	reorder(doc.Root, root)
	return &tree.Document{Name: doc.Name, Root: root}, nil
}

// FromYAML converts a patch written in YAML to JSON.
func FromYAML(d []byte) ([]byte, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return j, nil
}

func reorder(orig, t tag.Tag) {
	switch x := t.(type) {
	case *tag.Compound:
		oc, ok := orig.(*tag.Compound)
		if !ok {
			oc = tag.NewCompound()
		}
		keys := make([]string, 0, x.Len())
		for _, k := range oc.Keys {
			if x.Has(k) {
				keys = append(keys, k)
			}
		}
		var added []string
		for _, k := range x.Keys {
			if !oc.Has(k) {
				added = append(added, k)
			}
		}
		slices.Sort(added)
		keys = append(keys, added...)
		vals := make([]tag.Tag, len(keys))
		for i, k := range keys {
			v, _ := x.Get(k)
			ov, _ := oc.Get(k)
			reorder(ov, v)
			vals[i] = v
		}
		x.Keys, x.Values = keys, vals
	case *tag.List:
		ol, _ := orig.(*tag.List)
		for i, v := range x.Values {
			var ov tag.Tag
			if ol != nil && i < ol.Len() {
				ov = ol.Values[i]
			}
			reorder(ov, v)
		}
	}
}
