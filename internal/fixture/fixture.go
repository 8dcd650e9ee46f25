// Package fixture implements the stop-marker text format used by the
// word-part tests and the annotate mode of the CLI.
//
// A fixture is a line-based text blob where '|' marks a stop position:
//
//	|this|Is|A|Camel|Case|Var|
//
// Parse strips the markers and records their 1-based (line, column)
// coordinates against the cleaned text; Render re-inserts markers at
// given positions. A malformed fixture (duplicate, unsorted, or
// out-of-range stops) is a test-authoring bug, surfaced loudly as an
// error rather than truncated. Literal '|' characters cannot appear in
// fixture text; this is a test-authoring convenience, not a persisted
// format.
package fixture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/wordpart/internal/engine/buffer"
)

// Marker is the stop marker character.
const Marker = '|'

// Errors returned for malformed fixtures.
var (
	ErrDuplicateStop  = errors.New("fixture: duplicate stop marker")
	ErrUnsortedStops  = errors.New("fixture: stops not in reading order")
	ErrStopOutOfRange = errors.New("fixture: stop outside text bounds")
)

// Parse strips stop markers from blob and returns the cleaned text
// together with the marker coordinates in reading order. A marker
// placed before the character at cleaned column c records the stop
// (line, c); a marker at the end of a line records the end-of-line
// column. Two markers at the same spot are malformed.
func Parse(blob string) (string, []buffer.Position, error) {
	var (
		clean strings.Builder
		stops []buffer.Position
	)

	for i, line := range strings.Split(blob, "\n") {
		if i > 0 {
			clean.WriteByte('\n')
		}
		col := 1
		lastMarked := -1
		for j := 0; j < len(line); j++ {
			if line[j] == Marker {
				if col == lastMarked {
					return "", nil, fmt.Errorf("%w at (%d:%d)", ErrDuplicateStop, i+1, col)
				}
				stops = append(stops, buffer.Position{Line: i + 1, Col: col})
				lastMarked = col
				continue
			}
			clean.WriteByte(line[j])
			col++
		}
	}

	return clean.String(), stops, nil
}

// Render inserts a stop marker at every position of stops into text.
// Stops must be strictly increasing in reading order and within the
// bounds of the text (up to one past each line's last character);
// anything else is malformed and returns an error.
func Render(text string, stops []buffer.Position) (string, error) {
	doc := buffer.NewDocument(text)

	for i, p := range stops {
		if i > 0 && !stops[i-1].Before(p) {
			if stops[i-1] == p {
				return "", fmt.Errorf("%w at %s", ErrDuplicateStop, p)
			}
			return "", fmt.Errorf("%w: %s before %s", ErrUnsortedStops, stops[i-1], p)
		}
		if !doc.Contains(p) {
			return "", fmt.Errorf("%w: %s", ErrStopOutOfRange, p)
		}
	}

	var b strings.Builder
	next := 0
	for ln := 1; ln <= doc.LineCount(); ln++ {
		if ln > 1 {
			b.WriteByte('\n')
		}
		line := doc.Line(ln)
		for col := 1; col <= len(line)+1; col++ {
			if next < len(stops) && stops[next] == (buffer.Position{Line: ln, Col: col}) {
				b.WriteRune(Marker)
				next++
			}
			if col <= len(line) {
				b.WriteByte(line[col-1])
			}
		}
	}

	return b.String(), nil
}
