package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"repodepot/internal/ui/input/types"
	"repodepot/internal/ui/services/pagination"
)

// ResultsMode browses the paginated result sequence
type ResultsMode struct {
	keys types.KeyMap
}

func NewResultsMode(keys types.KeyMap) *ResultsMode {
	return &ResultsMode{keys: keys}
}

func (m *ResultsMode) Screen() types.Screen {
	return types.ScreenResults
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.ChangeScreenAction{Screen: types.ScreenSearch}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeScreenAction{Screen: types.ScreenHelp}}, true

	case key.Matches(msg, m.keys.PrevPage):
		return []types.Action{types.NavigateAction{Direction: pagination.DirectionLeft}}, true

	case key.Matches(msg, m.keys.NextPage):
		return []types.Action{types.NavigateAction{Direction: pagination.DirectionRight}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: pagination.DirectionUp}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: pagination.DirectionDown}}, true

	case key.Matches(msg, m.keys.Toggle):
		// Nothing to toggle on an empty result sequence
		if ctx.TotalResults() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleSelectionAction{}}, true
	}

	return nil, false
}
