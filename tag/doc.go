// Package tag provides the value model for binary tag trees, the nested,
// strongly typed documents used to store game state such as player data.
//
// # Kinds
//
// Every tag has one of a closed set of kinds:
//
//   - Byte, Short, Int, Long: signed integers of 8, 16, 32 and 64 bits
//   - Float, Double: IEEE binary32 and binary64
//   - String: UTF-8 text
//   - ByteArray, IntArray, LongArray: homogeneous integer sequences
//   - Compound: insertion ordered mapping of unique names to tags
//   - List: ordered tags which all share the list's Subtype
//
// Tag is a sealed interface; consumers switch over the concrete types and
// panic on anything else, so adding a kind is caught at every switch.
//
//	c := tag.NewCompound()
//	c.Set("Health", tag.Float(20))
//	c.Set("Inventory", tag.NewList())
//
// # Lists
//
// An empty list starts with the EndKind subtype.  The first element
// inserted fixes the subtype for the life of the list; see the edit
// package for the operation enforcing this.
//
// # Text
//
// Coerce parses user input into a tag of a requested kind, EditableText is
// its inverse for scalars and arrays, and Render produces the short summary
// shown in tree views:
//
//	t, err := tag.Coerce(tag.ByteArrayKind, "[1, 2, 3]")
//	tag.Render(t)       // "3 values"
//	tag.EditableText(t) // "1, 2, 3", true
//
// # JSON
//
// MarshalJSON and UnmarshalJSON convert tags to and from a typed JSON form
// which keeps every kind and compound key order.
//
// # Thread Safety
//
// Tags are not safe for concurrent mutation.
//
// # Related Packages
//
//   - github.com/signadot/nbtedit/tag/tpath - paths addressing tags
//   - github.com/signadot/nbtedit/tree - resolving paths against a root
//   - github.com/signadot/nbtedit/edit - validated container mutation
//   - github.com/signadot/nbtedit/nbt - the binary codec
package tag
