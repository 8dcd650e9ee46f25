package editor_test

import (
	"errors"
	"testing"

	"github.com/dshills/wordpart/internal/dispatcher/execctx"
	"github.com/dshills/wordpart/internal/dispatcher/handler"
	"github.com/dshills/wordpart/internal/dispatcher/handlers/editor"
	"github.com/dshills/wordpart/internal/engine/buffer"
	"github.com/dshills/wordpart/internal/engine/cursor"
	"github.com/dshills/wordpart/internal/input"
)

// mockEngine implements execctx.EngineInterface over a Document value.
type mockEngine struct {
	doc buffer.Document
}

func newMockEngine(text string) *mockEngine {
	return &mockEngine{doc: buffer.NewDocument(text)}
}

func (e *mockEngine) Document() buffer.Document {
	return e.doc
}

func (e *mockEngine) Replace(r buffer.Range, newText string) error {
	e.doc = e.doc.Replace(r, newText)
	return nil
}

// mockCursor implements execctx.CursorInterface for a single selection.
type mockCursor struct {
	sel cursor.Selection
}

func (c *mockCursor) Selection() cursor.Selection       { return c.sel }
func (c *mockCursor) SetSelection(sel cursor.Selection) { c.sel = sel }
func (c *mockCursor) HasSelection() bool                { return !c.sel.IsEmpty() }

func newContext(text string, pos buffer.Position) (*execctx.ExecutionContext, *mockEngine, *mockCursor) {
	eng := newMockEngine(text)
	cur := &mockCursor{sel: cursor.NewCursorSelection(pos)}
	ctx := execctx.New().WithEngine(eng).WithCursor(cur)
	return ctx, eng, cur
}

func TestDeleteHandlerCanHandle(t *testing.T) {
	h := editor.NewDeleteHandler()

	if h.Namespace() != "editor" {
		t.Errorf("Namespace() = %q, want %q", h.Namespace(), "editor")
	}
	if !h.CanHandle(editor.ActionDeleteWordPartLeft) || !h.CanHandle(editor.ActionDeleteWordPartRight) {
		t.Error("CanHandle rejected a delete action")
	}
	if h.CanHandle("editor.insertText") {
		t.Error("CanHandle accepted an unrelated action")
	}
}

func TestDeleteWordPart(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    buffer.Position
		action   string
		count    int
		wantText string
		wantPos  buffer.Position
	}{
		{
			name:     "right removes hump",
			text:     "thisIsAVar",
			start:    buffer.Position{Line: 1, Col: 1},
			action:   editor.ActionDeleteWordPartRight,
			count:    1,
			wantText: "IsAVar",
			wantPos:  buffer.Position{Line: 1, Col: 1},
		},
		{
			name:     "left removes hump",
			text:     "thisIsAVar",
			start:    buffer.Position{Line: 1, Col: 11},
			action:   editor.ActionDeleteWordPartLeft,
			count:    1,
			wantText: "thisIsA",
			wantPos:  buffer.Position{Line: 1, Col: 8},
		},
		{
			name:     "left removes trailing underscore with segment",
			text:     "one_two",
			start:    buffer.Position{Line: 1, Col: 8},
			action:   editor.ActionDeleteWordPartLeft,
			count:    2,
			wantText: "",
			wantPos:  buffer.Position{Line: 1, Col: 1},
		},
		{
			name:     "counted right",
			text:     "oneTwoThree",
			start:    buffer.Position{Line: 1, Col: 1},
			action:   editor.ActionDeleteWordPartRight,
			count:    2,
			wantText: "Three",
			wantPos:  buffer.Position{Line: 1, Col: 1},
		},
		{
			name:     "right at line end joins lines",
			text:     "foo\nbar",
			start:    buffer.Position{Line: 1, Col: 4},
			action:   editor.ActionDeleteWordPartRight,
			count:    1,
			wantText: "foobar",
			wantPos:  buffer.Position{Line: 1, Col: 4},
		},
		{
			name:     "count exceeding content stops early",
			text:     "ab cd",
			start:    buffer.Position{Line: 1, Col: 6},
			action:   editor.ActionDeleteWordPartLeft,
			count:    99,
			wantText: "",
			wantPos:  buffer.Position{Line: 1, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, eng, cur := newContext(tt.text, tt.start)
			ctx = ctx.WithCount(tt.count)
			h := editor.NewDeleteHandler()

			res := h.HandleAction(input.NewAction(tt.action), ctx)
			if !res.IsOK() {
				t.Fatalf("result = %v, error = %v", res.Status, res.Error)
			}
			if got := eng.Document().Text(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			if got := cur.Selection().Head; got != tt.wantPos {
				t.Errorf("cursor = %s, want %s", got, tt.wantPos)
			}
		})
	}
}

func TestDeleteRecordsEdits(t *testing.T) {
	ctx, _, _ := newContext("oneTwo", buffer.Position{Line: 1, Col: 1})
	ctx = ctx.WithCount(2)
	h := editor.NewDeleteHandler()

	res := h.HandleAction(input.NewAction(editor.ActionDeleteWordPartRight), ctx)
	if !res.IsOK() {
		t.Fatalf("result = %v, error = %v", res.Status, res.Error)
	}
	if len(res.Edits) != 2 {
		t.Fatalf("edits = %d, want 2", len(res.Edits))
	}
	if res.Edits[0].OldText != "one" {
		t.Errorf("first edit old text = %q, want %q", res.Edits[0].OldText, "one")
	}
	if res.Edits[1].OldText != "Two" {
		t.Errorf("second edit old text = %q, want %q", res.Edits[1].OldText, "Two")
	}
}

func TestDeleteActiveSelection(t *testing.T) {
	ctx, eng, cur := newContext("keep THIS keep", buffer.Position{Line: 1, Col: 1})
	cur.sel = cursor.NewSelection(
		buffer.Position{Line: 1, Col: 5},
		buffer.Position{Line: 1, Col: 10},
	)
	h := editor.NewDeleteHandler()

	// Direction is irrelevant when a selection is active.
	res := h.HandleAction(input.NewAction(editor.ActionDeleteWordPartRight), ctx)
	if !res.IsOK() {
		t.Fatalf("result = %v, error = %v", res.Status, res.Error)
	}
	if got := eng.Document().Text(); got != "keep keep" {
		t.Errorf("text = %q, want %q", got, "keep keep")
	}
	if got := cur.Selection().Head; got != (buffer.Position{Line: 1, Col: 5}) {
		t.Errorf("cursor = %s, want (1:5)", got)
	}
	if cur.HasSelection() {
		t.Error("selection should collapse after deletion")
	}
	if len(res.Edits) != 1 || res.Edits[0].OldText != " THIS" {
		t.Errorf("edits = %+v, want one edit removing %q", res.Edits, " THIS")
	}
}

func TestDeleteAtBufferEdgeIsNoOp(t *testing.T) {
	ctx, eng, _ := newContext("text", buffer.Position{Line: 1, Col: 1})
	h := editor.NewDeleteHandler()

	res := h.HandleAction(input.NewAction(editor.ActionDeleteWordPartLeft), ctx)
	if res.Status != handler.StatusNoOp {
		t.Fatalf("status = %v, want no-op", res.Status)
	}
	if got := eng.Document().Text(); got != "text" {
		t.Errorf("text changed to %q", got)
	}
}

func TestDeleteReadOnlyContext(t *testing.T) {
	ctx, eng, _ := newContext("text", buffer.Position{Line: 1, Col: 5})
	ctx.ReadOnly = true
	h := editor.NewDeleteHandler()

	res := h.HandleAction(input.NewAction(editor.ActionDeleteWordPartLeft), ctx)
	if !res.IsError() {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if !errors.Is(res.Error, execctx.ErrReadOnly) {
		t.Errorf("error = %v, want ErrReadOnly", res.Error)
	}
	if got := eng.Document().Text(); got != "text" {
		t.Errorf("text changed to %q", got)
	}
}
