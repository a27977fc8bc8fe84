package state

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repodepot/internal/domain"
	"repodepot/internal/ui/input/types"
	"repodepot/internal/ui/services/pagination"
)

func repos(names ...string) []domain.Repository {
	out := make([]domain.Repository, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Repository{
			URL:      "https://github.com/" + n,
			FullName: n,
		})
	}
	return out
}

func numbered(n int) []domain.Repository {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("owner/repo-%02d", i)
	}
	return repos(names...)
}

func TestQueryBufferBackspace(t *testing.T) {
	var q QueryBuffer
	q.Append("abc")
	require.True(t, q.Backspace())
	require.True(t, q.Backspace())
	assert.Equal(t, "a", q.String())

	require.True(t, q.Backspace())
	assert.False(t, q.Backspace(), "backspace on an empty buffer is a no-op")
	assert.Equal(t, "", q.String())
	assert.Zero(t, q.Len())
}

func TestQueryBufferIsRuneBased(t *testing.T) {
	var q QueryBuffer
	q.Append("gö日")
	assert.Equal(t, 3, q.Len())
	q.Backspace()
	assert.Equal(t, "gö", q.String())
}

func TestNewAppState(t *testing.T) {
	s := NewAppState(0)
	assert.Equal(t, types.ScreenSearch, s.Screen)
	assert.Equal(t, pagination.DefaultPageSize, s.Cursor.PageSize)
	assert.NotNil(t, s.Selection)
	assert.False(t, s.Exit)
}

func TestApplySearchResultsResetsCursor(t *testing.T) {
	s := NewAppState(10)
	s.ApplySearchResults("first", numbered(25))
	s.Navigate(pagination.DirectionRight)
	s.Navigate(pagination.DirectionDown)
	require.Equal(t, 11, s.Cursor.Absolute())

	s.Query.Append("second")
	query := s.BeginSearch()
	assert.True(t, s.Searching)
	assert.Equal(t, "second", query)

	s.ApplySearchResults(query, numbered(3))
	assert.False(t, s.Searching)
	assert.Equal(t, types.ScreenResults, s.Screen)
	assert.Equal(t, 0, s.Cursor.Page)
	assert.Equal(t, 0, s.Cursor.Index)
	assert.Equal(t, "second", s.LastQuery)
	assert.Len(t, s.VisibleResults(), 3)
}

func TestSelectionSurvivesResearch(t *testing.T) {
	s := NewAppState(10)
	s.ApplySearchResults("cli", repos("a/x", "b/y", "c/z"))
	s.Navigate(pagination.DirectionDown)
	s.ToggleCurrent()
	require.True(t, s.Selection.Contains("https://github.com/b/y"))

	s.ApplySearchResults("tui", repos("d/w", "b/y"))
	assert.True(t, s.Selection.Contains("https://github.com/b/y"))
	assert.True(t, s.IsSelected(s.Results[1]))
	assert.False(t, s.IsSelected(s.Results[0]))

	s.ApplySearchResults("none", nil)
	assert.Equal(t, []string{"https://github.com/b/y"}, s.SelectedIDs())
}

func TestFailSearchLeavesStateUntouched(t *testing.T) {
	s := NewAppState(10)
	s.ApplySearchResults("cli", repos("a/x", "b/y"))
	s.ToggleCurrent()
	s.SetScreen(types.ScreenSearch)

	s.BeginSearch()
	s.FailSearch(errors.New("connection refused"))

	assert.False(t, s.Searching)
	assert.Equal(t, types.ScreenSearch, s.Screen)
	assert.Len(t, s.Results, 2)
	assert.Equal(t, "cli", s.LastQuery)
	assert.Equal(t, 1, s.Selection.Len())
	assert.True(t, s.StatusIsError)
	assert.Contains(t, s.StatusMessage, "connection refused")
}

func TestEmptySequenceIsSafe(t *testing.T) {
	s := NewAppState(10)
	s.ApplySearchResults("nothing", nil)

	for _, dir := range []pagination.Direction{
		pagination.DirectionUp, pagination.DirectionDown,
		pagination.DirectionLeft, pagination.DirectionRight,
	} {
		s.Navigate(dir)
	}
	s.ToggleCurrent()

	assert.Equal(t, 0, s.Cursor.Index)
	assert.Equal(t, 0, s.Cursor.Page)
	assert.Zero(t, s.Selection.Len())
	assert.Empty(t, s.VisibleResults())
	_, ok := s.CurrentRepository()
	assert.False(t, ok)
}

func TestToggleCurrentUsesAbsoluteIndex(t *testing.T) {
	s := NewAppState(10)
	s.ApplySearchResults("many", numbered(25))
	s.Navigate(pagination.DirectionRight)
	s.Navigate(pagination.DirectionRight)
	s.Navigate(pagination.DirectionUp) // wraps to the last of 5 visible items
	s.ToggleCurrent()

	assert.Equal(t, []string{"https://github.com/owner/repo-24"}, s.SelectedIDs())
}

func TestRequestExit(t *testing.T) {
	s := NewAppState(10)
	s.RequestExit(false)
	assert.True(t, s.Exit)
	assert.False(t, s.Aborted)

	s.RequestExit(true)
	assert.True(t, s.Aborted)
}
