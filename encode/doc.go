// Package encode writes documents as text.
//
// # Usage
//
//	// indented tree, one line per tag
//	err := encode.Encode(doc, os.Stdout)
//
//	// with colours, two levels deep
//	err := encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()), encode.Depth(2))
//
//	// typed JSON, readable back with tag.UnmarshalJSON
//	err := encode.Encode(doc, w, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/signadot/nbtedit/tag - tag rendering and the typed JSON form
//   - github.com/signadot/nbtedit/format - output formats
package encode
