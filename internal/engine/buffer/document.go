package buffer

import "strings"

// Document is an immutable, line-addressed view of text.
// Lines are addressed 1-based and never include line terminators.
// All mutating operations return a new Document, leaving the
// receiver untouched, so a Document can be shared freely across
// concurrent readers.
type Document struct {
	lines []string
}

// NewDocument creates a document from text, splitting on '\n'.
// An empty string yields a document with a single empty line,
// which is the smallest valid document.
func NewDocument(text string) Document {
	return Document{lines: strings.Split(text, "\n")}
}

// NewDocumentFromLines creates a document from pre-split lines.
// The slice is copied; the caller keeps ownership of its slice.
func NewDocumentFromLines(lines []string) Document {
	if len(lines) == 0 {
		lines = []string{""}
	}
	copied := make([]string, len(lines))
	copy(copied, lines)
	return Document{lines: copied}
}

// Text returns the full document text with '\n' line terminators.
func (d Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	if len(d.lines) == 0 {
		return 1
	}
	return len(d.lines)
}

// Line returns the text of the 1-based line n, or "" if n is out of range.
func (d Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// LineLen returns the length in bytes of the 1-based line n.
func (d Document) LineLen(n int) int {
	return len(d.Line(n))
}

// MaxCol returns the largest valid column on line n, one past the
// last character.
func (d Document) MaxCol(n int) int {
	return d.LineLen(n) + 1
}

// Start returns the first position of the document.
func (d Document) Start() Position {
	return Position{Line: 1, Col: 1}
}

// End returns the last position of the document, one past the final
// character of the final line.
func (d Document) End() Position {
	last := d.LineCount()
	return Position{Line: last, Col: d.MaxCol(last)}
}

// Clamp returns the position forced into document bounds.
func (d Document) Clamp(p Position) Position {
	if p.Line < 1 {
		return d.Start()
	}
	if p.Line > d.LineCount() {
		return d.End()
	}
	if p.Col < 1 {
		p.Col = 1
	}
	if max := d.MaxCol(p.Line); p.Col > max {
		p.Col = max
	}
	return p
}

// Contains returns true if p addresses a valid position in the document.
func (d Document) Contains(p Position) bool {
	return p.Line >= 1 && p.Line <= d.LineCount() &&
		p.Col >= 1 && p.Col <= d.MaxCol(p.Line)
}

// Slice returns the text covered by the half-open range r.
// Line breaks inside the range appear as '\n'. The range is
// normalized and clamped to document bounds first.
func (d Document) Slice(r Range) string {
	r = r.Normalize()
	start := d.Clamp(r.Start)
	end := d.Clamp(r.End)
	if !start.Before(end) {
		return ""
	}

	if start.Line == end.Line {
		return d.Line(start.Line)[start.Col-1 : end.Col-1]
	}

	var b strings.Builder
	b.WriteString(d.Line(start.Line)[start.Col-1:])
	for line := start.Line + 1; line < end.Line; line++ {
		b.WriteByte('\n')
		b.WriteString(d.Line(line))
	}
	b.WriteByte('\n')
	b.WriteString(d.Line(end.Line)[:end.Col-1])
	return b.String()
}

// Replace returns a new document with the text covered by r replaced
// by newText. Deleting a range that spans a line break joins the
// surrounding lines; newText may itself contain '\n' to introduce
// new lines. The receiver is unchanged.
func (d Document) Replace(r Range, newText string) Document {
	r = r.Normalize()
	start := d.Clamp(r.Start)
	end := d.Clamp(r.End)

	prefix := d.Line(start.Line)[:start.Col-1]
	suffix := d.Line(end.Line)[end.Col-1:]

	merged := prefix + newText + suffix
	replacement := strings.Split(merged, "\n")

	lines := make([]string, 0, len(d.lines)-(end.Line-start.Line)+len(replacement)-1)
	lines = append(lines, d.lines[:start.Line-1]...)
	lines = append(lines, replacement...)
	if end.Line < len(d.lines) {
		lines = append(lines, d.lines[end.Line:]...)
	}
	return Document{lines: lines}
}

// Delete returns a new document with the text covered by r removed.
func (d Document) Delete(r Range) Document {
	return d.Replace(r, "")
}
