package part

import (
	"github.com/dshills/wordpart/internal/engine/buffer"
)

// Direction selects which way a motion walks the document.
type Direction uint8

const (
	// DirLeft walks toward the start of the document.
	DirLeft Direction = iota
	// DirRight walks toward the end of the document.
	DirRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Engine walks a document one word-part boundary at a time.
// Engine is a stateless value; each motion reads an immutable
// document snapshot and returns a result without mutating anything,
// so a single Engine is safe to share across concurrent queries.
type Engine struct {
	wrap bool
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithLineWrap controls whether motion crosses line boundaries when no
// in-line boundary remains: leftward from column 1 lands on the end of
// the previous line, rightward from end of line on column 1 of the
// next. Enabled by default; with wrapping off, motion clamps to the
// current line's edges and multi-line traversal is the caller's
// responsibility.
func WithLineWrap(wrap bool) Option {
	return func(e *Engine) {
		e.wrap = wrap
	}
}

// New creates a motion engine.
func New(opts ...Option) Engine {
	e := Engine{wrap: true}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NextInLine scans right from the 1-based column col of line and
// returns the first boundary column strictly after it. The second
// result is false when the scan ran off the end of the line without
// finding one; the returned column is then the line's end column.
func NextInLine(line string, col int) (int, bool) {
	maxCol := len(line) + 1
	for c := col + 1; c <= maxCol; c++ {
		if IsBoundary(line, c) {
			return c, true
		}
	}
	return maxCol, false
}

// PrevInLine scans left from col and returns the first boundary column
// strictly before it. The second result is false when the scan reached
// column 1 without finding one; the returned column is then 1.
func PrevInLine(line string, col int) (int, bool) {
	for c := col - 1; c >= 1; c-- {
		if IsBoundary(line, c) {
			return c, true
		}
	}
	return 1, false
}

// Next returns the position of the first word-part boundary strictly
// after pos. At the end of the document the position is returned
// unchanged (rightward motion is a no-op there). The input is clamped
// to document bounds first.
func (e Engine) Next(doc buffer.Document, pos buffer.Position) buffer.Position {
	pos = doc.Clamp(pos)

	if pos.Col >= doc.MaxCol(pos.Line) {
		// Already at end of line: the next stop is the start of the
		// following line, when wrapping is on and one exists.
		if e.wrap && pos.Line < doc.LineCount() {
			return buffer.Position{Line: pos.Line + 1, Col: 1}
		}
		return pos
	}

	col, _ := NextInLine(doc.Line(pos.Line), pos.Col)
	return buffer.Position{Line: pos.Line, Col: col}
}

// Prev returns the position of the first word-part boundary strictly
// before pos. At the start of the document the position is returned
// unchanged (leftward motion is a no-op there). The input is clamped
// to document bounds first.
func (e Engine) Prev(doc buffer.Document, pos buffer.Position) buffer.Position {
	pos = doc.Clamp(pos)

	if pos.Col <= 1 {
		if e.wrap && pos.Line > 1 {
			return buffer.Position{Line: pos.Line - 1, Col: doc.MaxCol(pos.Line - 1)}
		}
		return pos
	}

	col, _ := PrevInLine(doc.Line(pos.Line), pos.Col)
	return buffer.Position{Line: pos.Line, Col: col}
}

// Step returns the next boundary position in the given direction.
func (e Engine) Step(doc buffer.Document, pos buffer.Position, dir Direction) buffer.Position {
	if dir == DirLeft {
		return e.Prev(doc, pos)
	}
	return e.Next(doc, pos)
}

// DeleteRange returns the half-open range a delete-word-part operation
// removes: exactly the span a single motion in dir would have skipped
// over, normalized so Start <= End. The range is empty when pos sits at
// the document boundary in the requested direction; callers treat that
// as a no-op.
//
// The caller applies the deletion and places the cursor at the range's
// start; this engine never mutates the document itself.
func (e Engine) DeleteRange(doc buffer.Document, pos buffer.Position, dir Direction) buffer.Range {
	pos = doc.Clamp(pos)
	return buffer.NewRange(pos, e.Step(doc, pos, dir))
}

// Stops returns every stop position of the document in reading order:
// each line's column 1 and end column, plus every column the
// classifier marks as a boundary. This is exactly the set of positions
// repeated motion visits, in either direction.
func (e Engine) Stops(doc buffer.Document) []buffer.Position {
	var stops []buffer.Position
	for ln := 1; ln <= doc.LineCount(); ln++ {
		line := doc.Line(ln)
		maxCol := len(line) + 1
		stops = append(stops, buffer.Position{Line: ln, Col: 1})
		for col := 2; col < maxCol; col++ {
			if IsBoundary(line, col) {
				stops = append(stops, buffer.Position{Line: ln, Col: col})
			}
		}
		if maxCol > 1 {
			stops = append(stops, buffer.Position{Line: ln, Col: maxCol})
		}
	}
	return stops
}
