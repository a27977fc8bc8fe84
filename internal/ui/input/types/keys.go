package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of every screen
type KeyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Help      key.Binding

	// Search screen
	Submit     key.Binding
	Backspace  key.Binding
	SearchQuit key.Binding

	// Results screen
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Toggle   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		SearchQuit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "new search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j/s", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h/a", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l/d", "next page"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
	}
}

// ScreenHelp returns the bindings shown in the footer of a screen
func (k KeyMap) ScreenHelp(screen Screen) []key.Binding {
	switch screen {
	case ScreenSearch:
		return []key.Binding{k.Submit, k.Backspace, k.Help, k.SearchQuit}
	case ScreenResults:
		return []key.Binding{k.Up, k.Down, k.PrevPage, k.NextPage, k.Toggle, k.Back, k.Help, k.Quit}
	case ScreenHelp:
		return []key.Binding{k.Quit}
	default:
		return nil
	}
}

// FullHelp returns every binding grouped by screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ScreenHelp(ScreenSearch),
		k.ScreenHelp(ScreenResults),
	}
}
