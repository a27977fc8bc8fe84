package types

import tea "github.com/charmbracelet/bubbletea"

// Screen represents one of the mutually exclusive UI screens
type Screen int

const (
	ScreenSearch Screen = iota
	ScreenResults
	ScreenHelp
)

func (s Screen) String() string {
	switch s {
	case ScreenSearch:
		return "search"
	case ScreenResults:
		return "results"
	case ScreenHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Screens lists every screen; each one must have a registered handler
var Screens = []Screen{ScreenSearch, ScreenResults, ScreenHelp}

// Action represents a state change the dispatcher should apply
type Action interface {
	Type() string
}

// Context provides read-only access to the state needed for input handling
type Context interface {
	CurrentScreen() Screen
	Searching() bool
	QueryLength() int
	TotalResults() int
}

// ModeHandler maps key presses on a single screen to actions
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Screen returns the screen this handler serves
	Screen() Screen
}
