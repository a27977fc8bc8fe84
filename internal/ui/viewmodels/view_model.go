package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"repodepot/internal/ui/input/types"
	"repodepot/internal/ui/state"
	"repodepot/internal/ui/views"
)

// LocalIndex reports repositories that already have a checkout
type LocalIndex interface {
	Contains(id string) bool
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state    *state.AppState
	keys     types.KeyMap
	width    int
	height   int
	help     help.Model
	cloneDir string
	local    LocalIndex
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state: appState,
		keys:  keys,
		help:  help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetCloneDir sets the directory shown as the clone destination
func (vm *ViewModel) SetCloneDir(dir string) {
	vm.cloneDir = dir
}

// SetLocalIndex sets the index used to mark results that are already cloned
func (vm *ViewModel) SetLocalIndex(local LocalIndex) {
	vm.local = local
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state
	total := s.TotalResults()
	visible := s.VisibleResults()
	offset, _ := s.Cursor.Bounds(total)

	selected := make([]bool, len(visible))
	local := make([]bool, len(visible))
	for i, repo := range visible {
		selected[i] = s.IsSelected(repo)
		local[i] = vm.local != nil && vm.local.Contains(repo.ID())
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Screen:        s.Screen,
		Query:         s.Query.String(),
		LastQuery:     s.LastQuery,
		Searching:     s.Searching,
		Visible:       visible,
		Offset:        offset,
		Selected:      selected,
		Local:         local,
		CursorIndex:   s.Cursor.Index,
		Page:          s.Cursor.Page,
		PageCount:     s.Cursor.PageCount(total),
		Total:         total,
		SelectedCount: s.Selection.Len(),
		StatusMessage: s.StatusMessage,
		StatusIsError: s.StatusIsError,
		HelpModel:     vm.help,
		ShortHelp:     vm.keys.ScreenHelp(s.Screen),
		FullHelp:      vm.keys.FullHelp(),
		CloneDir:      vm.cloneDir,
	}
}
