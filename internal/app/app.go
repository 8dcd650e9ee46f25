// Package app hosts the interactive terminal demo. It wires the
// dispatcher, the word-part handlers, and a tcell screen into a small
// editor loop: arrow keys move by word part, shifted arrows extend the
// selection, and Backspace/Delete remove the adjacent part.
package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wordpart/internal/dispatcher"
	cursorhandler "github.com/dshills/wordpart/internal/dispatcher/handlers/cursor"
	"github.com/dshills/wordpart/internal/dispatcher/handlers/editor"
	"github.com/dshills/wordpart/internal/engine/buffer"
	"github.com/dshills/wordpart/internal/input"
)

// ErrQuit signals a clean exit from the event loop.
var ErrQuit = errors.New("app: quit")

// App is the interactive demo editor.
type App struct {
	screen tcell.Screen
	state  *EditorState
	disp   *dispatcher.Dispatcher
	status string
}

// New creates an app editing the given text. The screen is not
// initialized until Run.
func New(text string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("app: create screen: %w", err)
	}

	state := NewEditorState(text)

	d := dispatcher.New()
	d.SetEngine(state)
	d.SetCursor(state)
	d.RegisterNamespace(cursorhandler.NewMotionHandler())
	d.RegisterNamespace(editor.NewDeleteHandler())

	return &App{screen: screen, state: state, disp: d}, nil
}

// Run initializes the screen and processes events until the user
// quits with Esc or Ctrl-C.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("app: init screen: %w", err)
	}
	defer a.screen.Fini()

	for {
		a.draw()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if err := a.handleKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// handleKey maps a key event to an action and dispatches it.
func (a *App) handleKey(ev *tcell.EventKey) error {
	var name string

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyLeft:
		name = cursorhandler.ActionWordPartLeft
		if ev.Modifiers()&tcell.ModShift != 0 {
			name = cursorhandler.ActionSelectWordPartLeft
		}
	case tcell.KeyRight:
		name = cursorhandler.ActionWordPartRight
		if ev.Modifiers()&tcell.ModShift != 0 {
			name = cursorhandler.ActionSelectWordPartRight
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		name = editor.ActionDeleteWordPartLeft
	case tcell.KeyDelete:
		name = editor.ActionDeleteWordPartRight
	default:
		return nil
	}

	res := a.disp.Dispatch(input.NewAction(name))
	if res.IsError() {
		a.status = res.Error.Error()
	} else {
		sel := a.state.Selection()
		a.status = fmt.Sprintf("%s  %s", name, sel.Head)
	}
	return nil
}

// draw renders the document, selection highlight, cursor, and status
// line.
func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	doc := a.state.Document()
	sel := a.state.Selection()
	selRange := sel.Range()

	plain := tcell.StyleDefault
	highlight := tcell.StyleDefault.Reverse(true)

	for line := 1; line <= doc.LineCount() && line <= height-1; line++ {
		text := doc.Line(line)
		for i, r := range text {
			if i >= width {
				break
			}
			style := plain
			pos := buffer.Position{Line: line, Col: i + 1}
			if !sel.IsEmpty() && selRange.Contains(pos) {
				style = highlight
			}
			a.screen.SetContent(i, line-1, r, nil, style)
		}
	}

	for i, r := range a.status {
		if i >= width {
			break
		}
		a.screen.SetContent(i, height-1, r, nil, plain.Dim(true))
	}

	a.screen.ShowCursor(sel.Head.Col-1, sel.Head.Line-1)
	a.screen.Show()
}
