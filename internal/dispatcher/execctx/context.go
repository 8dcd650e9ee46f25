// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/wordpart/internal/engine/buffer"
	"github.com/dshills/wordpart/internal/engine/cursor"
)

// EngineInterface abstracts the text engine for handlers. The engine
// owns the current document; handlers read an immutable snapshot and
// request mutations through Replace.
type EngineInterface interface {
	// Document returns an immutable snapshot of the current text.
	Document() buffer.Document

	// Replace replaces the text covered by r with newText.
	Replace(r buffer.Range, newText string) error
}

// CursorInterface abstracts cursor state for handlers. One selection
// is carried per context; multi-cursor coordination is the caller's
// concern, applied one cursor at a time.
type CursorInterface interface {
	// Selection returns the current selection.
	Selection() cursor.Selection

	// SetSelection replaces the current selection.
	SetSelection(sel cursor.Selection)

	// HasSelection returns true if the selection has extent.
	HasSelection() bool
}

// ExecutionContext provides context for action execution.
type ExecutionContext struct {
	// Engine provides access to the text buffer.
	Engine EngineInterface

	// Cursor provides access to cursor/selection state.
	Cursor CursorInterface

	// Count is the repeat count (1 if not specified).
	Count int

	// ReadOnly blocks editing operations when set.
	ReadOnly bool
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{Count: 1}
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithCursor returns the context with cursor state set.
func (ctx *ExecutionContext) WithCursor(cur CursorInterface) *ExecutionContext {
	ctx.Cursor = cur
	return ctx
}

// WithCount returns the context with the repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// HasSelection returns true if there is an active selection.
func (ctx *ExecutionContext) HasSelection() bool {
	return ctx.Cursor != nil && ctx.Cursor.HasSelection()
}

// Validate checks that the context has the components every handler
// needs.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	if ctx.Cursor == nil {
		return ErrMissingCursor
	}
	return nil
}

// ValidateForEdit checks that the context is valid for editing
// operations.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.ReadOnly {
		return ErrReadOnly
	}
	return nil
}
