// Package nbt reads and writes the binary tag format.
//
// A stream holds one named root tag.  Numbers are big-endian, strings are
// prefixed by an unsigned 16 bit byte length, and arrays and lists by a
// signed 32 bit count.  Streams may be gzip compressed; Decode detects
// this from the magic bytes and reports it so that a document can be saved
// the way it was loaded:
//
//	c := &nbt.Codec{}
//	doc, err := c.Load(data)
//	...
//	out, err := c.Save(doc) // gzip again if data was gzip
//
// # Related Packages
//
//   - github.com/signadot/nbtedit/tag - the tag value model
//   - github.com/signadot/nbtedit/tree - documents
package nbt
