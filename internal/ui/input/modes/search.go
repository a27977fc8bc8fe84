package modes

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"repodepot/internal/ui/input/types"
)

// SearchMode edits the query buffer and submits it
type SearchMode struct {
	keys types.KeyMap
}

func NewSearchMode(keys types.KeyMap) *SearchMode {
	return &SearchMode{keys: keys}
}

func (m *SearchMode) Screen() types.Screen {
	return types.ScreenSearch
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.SearchQuit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeScreenAction{Screen: types.ScreenHelp}}, true

	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.SubmitSearchAction{}}, true

	case key.Matches(msg, m.keys.Backspace):
		// Backspace on an empty buffer is a no-op, not an error
		if ctx.QueryLength() == 0 {
			return nil, true
		}
		return []types.Action{types.DeleteCharAction{}}, true
	}

	if text := printable(msg); text != "" {
		return []types.Action{types.AppendTextAction{Text: text}}, true
	}
	return nil, false
}

// printable returns the characters a key press would type, or "" for
// control keys and modified runes.
func printable(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
	default:
		return ""
	}

	var b strings.Builder
	for _, r := range msg.Runes {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
