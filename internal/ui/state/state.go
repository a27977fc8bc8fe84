package state

import (
	"fmt"

	"repodepot/internal/domain"
	"repodepot/internal/ui/input/types"
	"repodepot/internal/ui/services/pagination"
	"repodepot/internal/ui/services/selection"
)

// AppState contains all the application state. Only the dispatcher writes
// to it; the renderer reads a snapshot between dispatches.
type AppState struct {
	Screen types.Screen
	Query  QueryBuffer

	// Search data
	Results   []domain.Repository // replaced wholesale on every successful search
	LastQuery string              // query that produced Results
	Searching bool                // a search is in flight, input is blocked

	// Selection and pagination
	Selection *selection.Set
	Cursor    pagination.Cursor

	// UI state
	StatusMessage string
	StatusIsError bool

	// Exit state
	Exit    bool
	Aborted bool // exit requested with ctrl+c, skip the follow-on clone
}

// NewAppState creates a new application state on the search screen
func NewAppState(pageSize int) *AppState {
	return &AppState{
		Screen:    types.ScreenSearch,
		Selection: selection.NewSet(),
		Cursor:    pagination.NewCursor(pageSize),
	}
}

// Screen operations

// SetScreen switches the active screen
func (s *AppState) SetScreen(screen types.Screen) {
	s.Screen = screen
}

// RequestExit sets the terminating flag
func (s *AppState) RequestExit(force bool) {
	s.Exit = true
	s.Aborted = s.Aborted || force
}

// Search operations

// BeginSearch marks a search as in flight and returns the query to send
func (s *AppState) BeginSearch() string {
	s.Searching = true
	query := s.Query.String()
	s.setStatus(fmt.Sprintf("Searching for %q...", query), false)
	return query
}

// ApplySearchResults replaces the result sequence, resets the cursor and
// moves to the results screen. The selection set is left untouched.
func (s *AppState) ApplySearchResults(query string, results []domain.Repository) {
	s.Searching = false
	s.Results = results
	s.LastQuery = query
	s.Cursor.Reset()
	s.Cursor.Clamp(len(s.Results))
	s.Screen = types.ScreenResults
	s.setStatus(fmt.Sprintf("%d results for %q", len(results), query), false)
}

// FailSearch records a search failure. The screen, results and selection
// stay as they were.
func (s *AppState) FailSearch(err error) {
	s.Searching = false
	s.setStatus(fmt.Sprintf("Search failed: %v", err), true)
}

// Result operations

// TotalResults returns the length of the result sequence
func (s *AppState) TotalResults() int {
	return len(s.Results)
}

// VisibleResults returns the slice of results on the current page
func (s *AppState) VisibleResults() []domain.Repository {
	start, end := s.Cursor.Bounds(len(s.Results))
	return s.Results[start:end]
}

// CurrentRepository returns the highlighted repository
func (s *AppState) CurrentRepository() (domain.Repository, bool) {
	if !s.Cursor.Valid(len(s.Results)) {
		return domain.Repository{}, false
	}
	return s.Results[s.Cursor.Absolute()], true
}

// Navigate moves the pagination cursor against the live result sequence
func (s *AppState) Navigate(dir pagination.Direction) {
	s.Cursor.Move(dir, len(s.Results))
}

// Selection operations

// ToggleCurrent toggles selection of the highlighted repository. It is a
// no-op when nothing is highlighted.
func (s *AppState) ToggleCurrent() {
	repo, ok := s.CurrentRepository()
	if !ok {
		return
	}
	if s.Selection.Toggle(repo.ID()) {
		s.setStatus(fmt.Sprintf("Selected %s (%d selected)", repo.DisplayName(), s.Selection.Len()), false)
	} else {
		s.setStatus(fmt.Sprintf("Deselected %s (%d selected)", repo.DisplayName(), s.Selection.Len()), false)
	}
}

// IsSelected checks if a repository is selected
func (s *AppState) IsSelected(repo domain.Repository) bool {
	return s.Selection.Contains(repo.ID())
}

// SelectedIDs returns the selected identifiers in selection order
func (s *AppState) SelectedIDs() []string {
	return s.Selection.IDs()
}

func (s *AppState) setStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}
