package app

import (
	"github.com/dshills/wordpart/internal/engine/buffer"
	"github.com/dshills/wordpart/internal/engine/cursor"
)

// EditorState holds the document and selection the demo edits. It
// implements the engine and cursor interfaces the dispatcher hands to
// handlers. All access happens on the event loop goroutine.
type EditorState struct {
	doc buffer.Document
	sel cursor.Selection
}

// NewEditorState creates editor state over the given text with the
// cursor at the start of the document.
func NewEditorState(text string) *EditorState {
	doc := buffer.NewDocument(text)
	return &EditorState{
		doc: doc,
		sel: cursor.NewCursorSelection(doc.Start()),
	}
}

// Document returns the current document snapshot.
func (s *EditorState) Document() buffer.Document {
	return s.doc
}

// Replace replaces the text covered by r with newText and clamps the
// selection to the resulting document.
func (s *EditorState) Replace(r buffer.Range, newText string) error {
	s.doc = s.doc.Replace(r, newText)
	s.sel = s.sel.Clamp(s.doc)
	return nil
}

// Selection returns the current selection.
func (s *EditorState) Selection() cursor.Selection {
	return s.sel
}

// SetSelection replaces the current selection.
func (s *EditorState) SetSelection(sel cursor.Selection) {
	s.sel = sel.Clamp(s.doc)
}

// HasSelection returns true if the selection has extent.
func (s *EditorState) HasSelection() bool {
	return !s.sel.IsEmpty()
}
