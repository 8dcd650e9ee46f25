package buffer

import "fmt"

// Range represents a span of text between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position // Inclusive start position
	End   Position // Exclusive end position
}

// NewRange creates a normalized Range covering both positions.
func NewRange(a, b Position) Range {
	return Range{Start: a.Min(b), End: a.Max(b)}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is normalized (Start <= End).
func (r Range) IsValid() bool {
	return !r.Start.After(r.End)
}

// Normalize returns a range with Start <= End.
func (r Range) Normalize() Range {
	if r.Start.After(r.End) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// SingleLine returns true if the range starts and ends on the same line.
func (r Range) SingleLine() bool {
	return r.Start.Line == r.End.Line
}
