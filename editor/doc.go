// Package editor is the host side of nbtedit: a Session owns one loaded
// document and drives both views of it.
//
// The tree view is Rows plus the Detail of the selection, edited with
// Apply, AddChild and Delete.  The inventory view is Inventories, edited
// slot by slot with EditSlot.  Both views change the document only
// through package edit, and the session rebuilds its path index after
// each change, so neither view sees stale data.
//
// Input is collected by prompters (ChildPrompter, SlotPrompter) supplied
// by the caller; a prompt either returns a complete answer or
// ErrCancelled, and nothing is changed before it returns.
package editor
