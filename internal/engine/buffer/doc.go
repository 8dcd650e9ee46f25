// Package buffer provides the position, range, and document types used
// by the word-part engine.
//
// The package provides:
//
//   - Position: 1-based line/column coordinates, ordered lexicographically
//   - Range: half-open [Start, End) spans between two positions
//   - Document: an immutable line-addressed view of text
//
// Coordinate Model:
//
// Columns are 1-based and measured in bytes from the start of the line.
// Column c addresses the character line[c-1]; column LineLen+1 is the
// valid "end of line" position. Line terminators are never part of a
// line's text: a range that spans a line break covers the break
// implicitly, and deleting it joins the surrounding lines.
//
// Basic usage:
//
//	doc := buffer.NewDocument("hello world\nsecond line")
//	doc.Line(1)                 // "hello world"
//	doc.End()                   // (2:12)
//
//	r := buffer.NewRange(buffer.Position{Line: 1, Col: 6}, doc.End())
//	doc = doc.Delete(r)         // "hello"
//
// Thread Safety:
//
// All three types are immutable values. Mutating operations on Document
// return a new Document, so values can be shared across goroutines
// without synchronization.
package buffer
