package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"repodepot/internal/ui/commands"
	"repodepot/internal/ui/input"
	inputtypes "repodepot/internal/ui/input/types"
	"repodepot/internal/ui/state"
	"repodepot/internal/ui/viewmodels"
	"repodepot/internal/ui/views"
)

// Options configures a Model
type Options struct {
	Context       context.Context
	Searcher      commands.Searcher
	PageSize      int
	SearchTimeout time.Duration
	CloneDir      string                // shown on the search screen
	InitialQuery  string                // submitted as soon as the program starts
	Local         viewmodels.LocalIndex // marks results already cloned, may be nil
}

// Model represents the UI state
type Model struct {
	state *state.AppState // single writer: Update

	width  int
	height int

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	initialQuery string
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	keys := inputtypes.DefaultKeyMap()
	appState := state.NewAppState(opts.PageSize)

	m := &Model{
		state:        appState,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, keys),
		cmdExecutor:  commands.NewExecutor(ctx, appState, opts.Searcher, opts.SearchTimeout),
		inputHandler: input.New(keys),
		initialQuery: opts.InitialQuery,
	}
	m.viewModel.SetCloneDir(opts.CloneDir)
	if opts.Local != nil {
		m.viewModel.SetLocalIndex(opts.Local)
	}
	return m
}

// Init submits the initial query, if any
func (m *Model) Init() tea.Cmd {
	if m.initialQuery == "" {
		return nil
	}
	return m.cmdExecutor.Execute([]inputtypes.Action{
		inputtypes.AppendTextAction{Text: m.initialQuery},
		inputtypes.SubmitSearchAction{},
	})
}

// Update handles messages. Only key presses, window resizes and search
// completions change anything; every other message is ignored.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state.Exit {
			return m, nil
		}
		actions := m.inputHandler.HandleKey(msg, &input.StateContext{State: m.state})
		if len(actions) == 0 {
			return m, nil
		}
		return m, m.cmdExecutor.Execute(actions)

	case searchCompletedMsg:
		m.cmdExecutor.CompleteSearch(msg)
		return m, nil

	default:
		log.Printf("Ignoring message %T", msg)
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Exit {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// SelectedIDs returns the selected repositories in selection order
func (m *Model) SelectedIDs() []string {
	return m.state.SelectedIDs()
}

// Aborted reports whether the user force-quit with ctrl+c
func (m *Model) Aborted() bool {
	return m.state.Aborted
}

// State exposes the application state for read-only inspection
func (m *Model) State() *state.AppState {
	return m.state
}
