package selection

import "sort"

// Set tracks which result identifiers are marked. Membership is keyed by
// identifier, so it is unaffected by pagination or by a new search that
// returns an overlapping identifier.
type Set struct {
	selected map[string]uint64 // identifier -> insertion sequence
	seq      uint64
}

// NewSet creates an empty selection set
func NewSet() *Set {
	return &Set{
		selected: make(map[string]uint64),
	}
}

// Toggle inserts id if absent and removes it if present. It returns the
// membership after the call. An empty identifier is never selected.
func (s *Set) Toggle(id string) bool {
	if id == "" {
		return false
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}
	s.seq++
	s.selected[id] = s.seq
	return true
}

// Contains checks if id is selected
func (s *Set) Contains(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Len returns the number of selected identifiers
func (s *Set) Len() int {
	return len(s.selected)
}

// IDs returns the selected identifiers in the order they were selected
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.selected[ids[i]] < s.selected[ids[j]]
	})
	return ids
}
