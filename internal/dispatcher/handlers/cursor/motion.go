package cursor

import (
	"github.com/dshills/wordpart/internal/dispatcher/execctx"
	"github.com/dshills/wordpart/internal/dispatcher/handler"
	"github.com/dshills/wordpart/internal/engine/part"
	"github.com/dshills/wordpart/internal/input"
)

// Action names for word-part motions.
const (
	ActionWordPartLeft  = "cursor.wordPartLeft"
	ActionWordPartRight = "cursor.wordPartRight"

	// Select variants keep the anchor fixed and move only the head.
	ActionSelectWordPartLeft  = "cursor.selectWordPartLeft"
	ActionSelectWordPartRight = "cursor.selectWordPartRight"
)

// MotionHandler handles word-part cursor movements.
type MotionHandler struct {
	engine part.Engine
}

// NewMotionHandler creates a motion handler with the default engine.
func NewMotionHandler(opts ...part.Option) *MotionHandler {
	return &MotionHandler{engine: part.New(opts...)}
}

// Namespace returns the cursor namespace.
func (h *MotionHandler) Namespace() string {
	return "cursor"
}

// CanHandle returns true if this handler can process the action.
func (h *MotionHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionWordPartLeft, ActionWordPartRight,
		ActionSelectWordPartLeft, ActionSelectWordPartRight:
		return true
	}
	return false
}

// HandleAction processes a motion action.
func (h *MotionHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()

	switch action.Name {
	case ActionWordPartLeft:
		return h.move(ctx, count, part.DirLeft, false)
	case ActionWordPartRight:
		return h.move(ctx, count, part.DirRight, false)
	case ActionSelectWordPartLeft:
		return h.move(ctx, count, part.DirLeft, true)
	case ActionSelectWordPartRight:
		return h.move(ctx, count, part.DirRight, true)
	default:
		return handler.Errorf("unknown motion action: %s", action.Name)
	}
}

// move advances the cursor count boundaries in the given direction.
// When extend is set, or when a selection is already active, the
// anchor stays fixed and only the head moves.
func (h *MotionHandler) move(ctx *execctx.ExecutionContext, count int, dir part.Direction, extend bool) handler.Result {
	doc := ctx.Engine.Document()
	sel := ctx.Cursor.Selection()

	pos := doc.Clamp(sel.Head)
	for i := 0; i < count; i++ {
		next := h.engine.Step(doc, pos, dir)
		if next == pos {
			break
		}
		pos = next
	}

	if pos == sel.Head {
		return handler.NoOp()
	}

	if extend || ctx.HasSelection() {
		ctx.Cursor.SetSelection(sel.Extend(pos))
	} else {
		ctx.Cursor.SetSelection(sel.MoveTo(pos))
	}

	return handler.Success().WithRedraw()
}
