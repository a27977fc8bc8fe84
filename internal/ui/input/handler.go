package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"repodepot/internal/ui/input/modes"
	"repodepot/internal/ui/input/types"
)

// Handler routes a key press to the handler of the active screen. It holds
// no state of its own, so the same (screen, key) pair always yields the
// same actions.
type Handler struct {
	keys  types.KeyMap
	modes map[types.Screen]types.ModeHandler
}

func New(keys types.KeyMap) *Handler {
	h := &Handler{
		keys:  keys,
		modes: make(map[types.Screen]types.ModeHandler),
	}

	// Register all screen handlers
	h.RegisterMode(modes.NewSearchMode(keys))
	h.RegisterMode(modes.NewResultsMode(keys))
	h.RegisterMode(modes.NewHelpMode(keys))

	for _, screen := range types.Screens {
		if h.modes[screen] == nil {
			panic(fmt.Sprintf("input: no handler registered for screen %s", screen))
		}
	}

	return h
}

// HandleKey returns the actions for a key press on the current screen.
// While a search is in flight only the force-quit chord is honoured.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if ctx.Searching() {
		if key.Matches(msg, h.keys.ForceQuit) {
			return []types.Action{types.QuitAction{Force: true}}
		}
		return nil
	}

	handler := h.modes[ctx.CurrentScreen()]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}
	return actions
}

// RegisterMode installs the handler for the screen it serves
func (h *Handler) RegisterMode(handler types.ModeHandler) {
	h.modes[handler.Screen()] = handler
}
