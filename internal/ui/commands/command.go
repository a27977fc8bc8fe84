package commands

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"repodepot/internal/domain"
	"repodepot/internal/ui/input/types"
	"repodepot/internal/ui/services/pagination"
	"repodepot/internal/ui/state"
)

// Searcher is the search provider the dispatcher calls on Enter
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Repository, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx      context.Context
	State    *state.AppState
	Searcher Searcher
	Timeout  time.Duration
}

// SearchCompletedMsg carries the outcome of a search back into the loop
type SearchCompletedMsg struct {
	Query   string
	Results []domain.Repository
	Err     error
}

// AppendTextCommand appends typed text to the query buffer
type AppendTextCommand struct {
	ctx  *CommandContext
	text string
}

func NewAppendTextCommand(ctx *CommandContext, text string) *AppendTextCommand {
	return &AppendTextCommand{ctx: ctx, text: text}
}

func (c *AppendTextCommand) Execute() tea.Cmd {
	c.ctx.State.Query.Append(c.text)
	return nil
}

// DeleteCharCommand removes the last character of the query buffer
type DeleteCharCommand struct {
	ctx *CommandContext
}

func NewDeleteCharCommand(ctx *CommandContext) *DeleteCharCommand {
	return &DeleteCharCommand{ctx: ctx}
}

func (c *DeleteCharCommand) Execute() tea.Cmd {
	c.ctx.State.Query.Backspace()
	return nil
}

// SearchCommand runs the search provider with the current query buffer
type SearchCommand struct {
	ctx *CommandContext
}

func NewSearchCommand(ctx *CommandContext) *SearchCommand {
	return &SearchCommand{ctx: ctx}
}

// Execute marks the search as in flight and returns the blocking call as
// a tea.Cmd. Its result arrives as a SearchCompletedMsg.
func (c *SearchCommand) Execute() tea.Cmd {
	if c.ctx.State.Searching {
		return nil
	}
	query := c.ctx.State.BeginSearch()
	log.Printf("Search requested: %q", query)

	parent := c.ctx.Ctx
	if parent == nil {
		parent = context.Background()
	}
	searcher := c.ctx.Searcher
	timeout := c.ctx.Timeout

	return func() tea.Msg {
		ctx := parent
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(parent, timeout)
			defer cancel()
		}
		results, err := searcher.Search(ctx, query)
		return SearchCompletedMsg{Query: query, Results: results, Err: err}
	}
}

// ChangeScreenCommand switches the active screen
type ChangeScreenCommand struct {
	ctx    *CommandContext
	screen types.Screen
}

func NewChangeScreenCommand(ctx *CommandContext, screen types.Screen) *ChangeScreenCommand {
	return &ChangeScreenCommand{ctx: ctx, screen: screen}
}

func (c *ChangeScreenCommand) Execute() tea.Cmd {
	c.ctx.State.SetScreen(c.screen)
	return nil
}

// NavigateCommand moves the pagination cursor
type NavigateCommand struct {
	ctx       *CommandContext
	direction pagination.Direction
}

func NewNavigateCommand(ctx *CommandContext, direction pagination.Direction) *NavigateCommand {
	return &NavigateCommand{ctx: ctx, direction: direction}
}

func (c *NavigateCommand) Execute() tea.Cmd {
	c.ctx.State.Navigate(c.direction)
	return nil
}

// ToggleSelectionCommand toggles the highlighted repository
type ToggleSelectionCommand struct {
	ctx *CommandContext
}

func NewToggleSelectionCommand(ctx *CommandContext) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{ctx: ctx}
}

func (c *ToggleSelectionCommand) Execute() tea.Cmd {
	c.ctx.State.ToggleCurrent()
	return nil
}

// QuitCommand sets the exit flag and stops the program
type QuitCommand struct {
	ctx   *CommandContext
	force bool
}

func NewQuitCommand(ctx *CommandContext, force bool) *QuitCommand {
	return &QuitCommand{ctx: ctx, force: force}
}

func (c *QuitCommand) Execute() tea.Cmd {
	c.ctx.State.RequestExit(c.force)
	return tea.Quit
}
