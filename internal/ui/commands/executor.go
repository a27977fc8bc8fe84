package commands

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"repodepot/internal/ui/input/types"
	"repodepot/internal/ui/state"
)

// Executor turns input actions into commands and applies them to the state
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, state *state.AppState, searcher Searcher, timeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:      ctx,
			State:    state,
			Searcher: searcher,
			Timeout:  timeout,
		},
	}
}

// Command returns the command for an action, or nil for unknown actions
func (e *Executor) Command(action types.Action) Command {
	switch a := action.(type) {
	case types.AppendTextAction:
		return NewAppendTextCommand(e.ctx, a.Text)
	case types.DeleteCharAction:
		return NewDeleteCharCommand(e.ctx)
	case types.SubmitSearchAction:
		return NewSearchCommand(e.ctx)
	case types.ChangeScreenAction:
		return NewChangeScreenCommand(e.ctx, a.Screen)
	case types.NavigateAction:
		return NewNavigateCommand(e.ctx, a.Direction)
	case types.ToggleSelectionAction:
		return NewToggleSelectionCommand(e.ctx)
	case types.QuitAction:
		return NewQuitCommand(e.ctx, a.Force)
	default:
		log.Printf("Executor: unknown action %T", action)
		return nil
	}
}

// Execute applies the actions in order and batches the resulting commands
func (e *Executor) Execute(actions []types.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		cmd := e.Command(action)
		if cmd == nil {
			continue
		}
		if teaCmd := cmd.Execute(); teaCmd != nil {
			cmds = append(cmds, teaCmd)
		}
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// CompleteSearch applies the outcome of a finished search
func (e *Executor) CompleteSearch(msg SearchCompletedMsg) {
	if msg.Err != nil {
		log.Printf("Search %q failed: %v", msg.Query, msg.Err)
		e.ctx.State.FailSearch(msg.Err)
		return
	}
	log.Printf("Search %q returned %d results", msg.Query, len(msg.Results))
	e.ctx.State.ApplySearchResults(msg.Query, msg.Results)
}
