// Package editor provides handlers for word-part deletion.
package editor

import (
	"github.com/dshills/wordpart/internal/dispatcher/execctx"
	"github.com/dshills/wordpart/internal/dispatcher/handler"
	"github.com/dshills/wordpart/internal/engine/part"
	"github.com/dshills/wordpart/internal/input"
)

// Action names for delete operations.
const (
	ActionDeleteWordPartLeft  = "editor.deleteWordPartLeft"
	ActionDeleteWordPartRight = "editor.deleteWordPartRight"
)

// DeleteHandler handles word-part deletion operations.
type DeleteHandler struct {
	engine part.Engine
}

// NewDeleteHandler creates a delete handler with the default engine.
func NewDeleteHandler(opts ...part.Option) *DeleteHandler {
	return &DeleteHandler{engine: part.New(opts...)}
}

// Namespace returns the editor namespace.
func (h *DeleteHandler) Namespace() string {
	return "editor"
}

// CanHandle returns true if this handler can process the action.
func (h *DeleteHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionDeleteWordPartLeft, ActionDeleteWordPartRight:
		return true
	}
	return false
}

// HandleAction processes a delete action.
func (h *DeleteHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()

	switch action.Name {
	case ActionDeleteWordPartLeft:
		return h.deleteParts(ctx, count, part.DirLeft)
	case ActionDeleteWordPartRight:
		return h.deleteParts(ctx, count, part.DirRight)
	default:
		return handler.Errorf("unknown delete action: %s", action.Name)
	}
}

// deleteParts removes count word parts in the given direction. An
// active selection is removed instead, regardless of direction. After
// every removal the cursor collapses to the start of the deleted range.
func (h *DeleteHandler) deleteParts(ctx *execctx.ExecutionContext, count int, dir part.Direction) handler.Result {
	sel := ctx.Cursor.Selection()

	if !sel.IsEmpty() {
		rng := sel.Range()
		doc := ctx.Engine.Document()
		old := doc.Slice(rng)
		if err := ctx.Engine.Replace(rng, ""); err != nil {
			return handler.Error(err)
		}
		ctx.Cursor.SetSelection(sel.MoveTo(rng.Start))
		return handler.Success().
			WithRedraw().
			WithEdit(handler.Edit{Range: rng, OldText: old})
	}

	result := handler.Success()
	deleted := 0

	for i := 0; i < count; i++ {
		// Each step reads a fresh snapshot: the previous deletion
		// changed the document and the boundary positions with it.
		doc := ctx.Engine.Document()
		pos := doc.Clamp(ctx.Cursor.Selection().Head)

		rng := h.engine.DeleteRange(doc, pos, dir)
		if rng.IsEmpty() {
			break
		}

		old := doc.Slice(rng)
		if err := ctx.Engine.Replace(rng, ""); err != nil {
			return handler.Error(err)
		}
		ctx.Cursor.SetSelection(ctx.Cursor.Selection().MoveTo(rng.Start))
		result = result.WithEdit(handler.Edit{Range: rng, OldText: old})
		deleted++
	}

	if deleted == 0 {
		return handler.NoOp()
	}
	return result.WithRedraw()
}
