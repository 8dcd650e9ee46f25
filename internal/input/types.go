// Package input defines the action type routed from key bindings to
// the dispatcher. Key decoding itself lives with the embedding editor;
// this package only carries the command identity and its repeat count.
package input

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "cursor.wordPartRight").
	// The prefix before the first dot is the handler namespace.
	Name string

	// Count is the repeat count (1 if not specified).
	Count int
}

// NewAction creates an action with the default count.
func NewAction(name string) Action {
	return Action{Name: name, Count: 1}
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// Namespace returns the prefix before the first dot of the action
// name, or "" if the name has no namespace.
func (a Action) Namespace() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == '.' {
			return a.Name[:i]
		}
	}
	return ""
}
