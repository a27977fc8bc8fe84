package input

import (
	"repodepot/internal/ui/input/types"
	"repodepot/internal/ui/state"
)

// StateContext implements the Context interface for the input handler
type StateContext struct {
	State *state.AppState
}

// CurrentScreen returns the active screen
func (c *StateContext) CurrentScreen() types.Screen {
	return c.State.Screen
}

// Searching reports whether a search is in flight
func (c *StateContext) Searching() bool {
	return c.State.Searching
}

// QueryLength returns the number of characters in the query buffer
func (c *StateContext) QueryLength() int {
	return c.State.Query.Len()
}

// TotalResults returns the length of the result sequence
func (c *StateContext) TotalResults() int {
	return c.State.TotalResults()
}
