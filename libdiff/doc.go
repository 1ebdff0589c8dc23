// Package libdiff computes structural differences between tag trees.
//
// Diff walks two trees together.  Compounds are matched by key, lists by
// aligning their elements with a sequence diff, and changed strings can
// be shown character by character with DiffText.  The result is an
// ordered list of changes which Apply replays through the edit package
// and Reverse inverts.
package libdiff
