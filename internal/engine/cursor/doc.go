// Package cursor provides the selection model for word-part navigation.
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor), preserving the user's selection direction.
// Motions with an active selection keep the anchor fixed and move only
// the head; motions without one collapse to a plain cursor.
//
// A single Selection is carried per execution context: multi-cursor
// coordination is the caller's concern, applied one cursor at a time.
//
// Selection is an immutable value type and safe for concurrent use.
package cursor
