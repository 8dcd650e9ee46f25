package buffer

import "fmt"

// Position represents a line and column location in a document.
// Both Line and Col are 1-based: column c addresses the character
// line[c-1], and Col == LineLen+1 is the valid "end of line" position.
// Position is an immutable value type.
type Position struct {
	Line int // 1-based line number
	Col  int // 1-based column
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// IsZero returns true if the position is the zero value.
// The zero value is not a valid document position; the first
// addressable position is (1:1).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Col == 0
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordering lexicographically by (Line, Col).
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other in reading order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in reading order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Min returns the earlier of p and other in reading order.
func (p Position) Min(other Position) Position {
	if p.Compare(other) <= 0 {
		return p
	}
	return other
}

// Max returns the later of p and other in reading order.
func (p Position) Max(other Position) Position {
	if p.Compare(other) >= 0 {
		return p
	}
	return other
}
