// Package dispatcher routes named actions to their handlers.
//
// Handlers register under a namespace (the action name prefix before
// the first dot); dispatching "cursor.wordPartRight" consults the
// "cursor" namespace handler. The dispatcher builds an execution
// context from its configured engine and cursor state for every
// dispatch, and recovers handler panics into error results so a
// misbehaving handler cannot take down the editor loop.
package dispatcher

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/wordpart/internal/dispatcher/execctx"
	"github.com/dshills/wordpart/internal/dispatcher/handler"
	"github.com/dshills/wordpart/internal/input"
)

// ErrNoHandler indicates no registered handler accepts the action.
var ErrNoHandler = errors.New("dispatcher: no handler for action")

// Dispatcher routes actions to namespace handlers.
type Dispatcher struct {
	mu         sync.RWMutex
	namespaces map[string]handler.NamespaceHandler
	engine     execctx.EngineInterface
	cursor     execctx.CursorInterface
	readOnly   bool
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// SetEngine sets the engine passed to handlers.
func (d *Dispatcher) SetEngine(engine execctx.EngineInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = engine
}

// SetCursor sets the cursor state passed to handlers.
func (d *Dispatcher) SetCursor(cur execctx.CursorInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = cur
}

// SetReadOnly controls whether editing actions are rejected.
func (d *Dispatcher) SetReadOnly(readOnly bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readOnly = readOnly
}

// RegisterNamespace registers a handler for its namespace, replacing
// any previous registration.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.namespaces[h.Namespace()] = h
}

// Dispatch routes the action to its namespace handler and returns the
// handler's result.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	d.mu.RLock()
	h, ok := d.namespaces[action.Namespace()]
	ctx := execctx.New().
		WithEngine(d.engine).
		WithCursor(d.cursor).
		WithCount(action.Count)
	ctx.ReadOnly = d.readOnly
	d.mu.RUnlock()

	if !ok || !h.CanHandle(action.Name) {
		return handler.Errorf("%w: %s", ErrNoHandler, action.Name)
	}

	return executeWithRecovery(h, action, ctx)
}

// executeWithRecovery runs the handler, converting panics to error
// results.
func executeWithRecovery(h handler.NamespaceHandler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = handler.Error(fmt.Errorf("handler panic on %s: %v", action.Name, r))
		}
	}()
	return h.HandleAction(action, ctx)
}
