package app

import (
	"testing"

	"github.com/dshills/wordpart/internal/engine/buffer"
	"github.com/dshills/wordpart/internal/engine/cursor"
)

func TestEditorStateReplaceClampsSelection(t *testing.T) {
	s := NewEditorState("hello world")
	s.SetSelection(cursor.NewCursorSelection(buffer.Position{Line: 1, Col: 12}))

	err := s.Replace(buffer.NewRange(
		buffer.Position{Line: 1, Col: 6},
		buffer.Position{Line: 1, Col: 12},
	), "")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if got := s.Document().Text(); got != "hello" {
		t.Errorf("text = %q, want %q", got, "hello")
	}
	if got := s.Selection().Head; got != (buffer.Position{Line: 1, Col: 6}) {
		t.Errorf("selection clamped to %s, want (1:6)", got)
	}
}

func TestEditorStateSetSelectionClamps(t *testing.T) {
	s := NewEditorState("ab")
	s.SetSelection(cursor.NewCursorSelection(buffer.Position{Line: 9, Col: 9}))

	if got := s.Selection().Head; got != (buffer.Position{Line: 1, Col: 3}) {
		t.Errorf("selection = %s, want (1:3)", got)
	}
	if s.HasSelection() {
		t.Error("collapsed selection reported as active")
	}
}
