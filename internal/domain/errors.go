package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when a search is submitted without any text
var ErrEmptyQuery = errors.New("search query is empty")

// SearchError wraps any failure of the search provider: transport errors,
// non-success statuses and undecodable responses all surface the same way.
type SearchError struct {
	Query  string
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *SearchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("search %q failed with status %d: %v", e.Query, e.Status, e.Err)
	}
	return fmt.Sprintf("search %q failed: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
