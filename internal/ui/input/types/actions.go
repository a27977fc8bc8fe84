package types

import "repodepot/internal/ui/services/pagination"

// Navigation actions
type NavigateAction struct {
	Direction pagination.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleSelectionAction struct{}

func (a ToggleSelectionAction) Type() string { return "toggle_selection" }

// Screen transition actions
type ChangeScreenAction struct {
	Screen Screen
}

func (a ChangeScreenAction) Type() string { return "change_screen" }

// Query buffer actions
type AppendTextAction struct {
	Text string
}

func (a AppendTextAction) Type() string { return "append_text" }

type DeleteCharAction struct{}

func (a DeleteCharAction) Type() string { return "delete_char" }

type SubmitSearchAction struct{}

func (a SubmitSearchAction) Type() string { return "submit_search" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'/Esc
}

func (a QuitAction) Type() string { return "quit" }
