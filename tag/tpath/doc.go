// Package tpath implements paths addressing tags in a tree.
//
// A Path is a sequence of components, each a compound key or a list
// index.  Paths have two renderings:
//
//   - String: the display form, "Inventory[3].tag.display"; the root is ""
//   - Quoted: the same form with keys quoted when they contain syntax
//     characters, "Data.'minecraft:stone'" stays unquoted while
//     "'a.b'[0]" is quoted; Parse reads it back
//
// Paths are plain values.  They say nothing about whether the tags they
// name exist; see the tree package for resolution.
package tpath
