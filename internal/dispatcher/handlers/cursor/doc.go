// Package cursor provides handlers for word-part cursor movement.
//
// The MotionHandler type provides sub-word movements:
//   - cursor.wordPartLeft: Move to the previous word-part boundary
//   - cursor.wordPartRight: Move to the next word-part boundary
//   - cursor.selectWordPartLeft: Extend the selection one boundary left
//   - cursor.selectWordPartRight: Extend the selection one boundary right
//
// All motions honor the execution context's repeat count, one boundary
// per step. When the context already has an active selection, the
// plain motions extend it rather than collapsing it, matching the
// select variants; the anchor never moves.
//
// Register with the dispatcher:
//
//	d.RegisterNamespace(cursor.NewMotionHandler())
package cursor
