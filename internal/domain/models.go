package domain

import (
	"net/url"
	"path"
	"strings"
)

// Repository is one search hit returned by the search provider.
// Values are never mutated after the provider creates them.
type Repository struct {
	URL         string // canonical html URL, the stable selection key
	FullName    string // owner/name
	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
	CloneURL    string
}

// ID returns the identifier used for selection membership
func (r Repository) ID() string {
	return r.URL
}

// HasDescription reports whether the provider returned a description
func (r Repository) HasDescription() bool {
	return strings.TrimSpace(r.Description) != ""
}

// DisplayName returns the name shown in the results list
func (r Repository) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Name
}

// OwnerAndName splits a repository identifier into its last two path
// segments, e.g. "https://github.com/charmbracelet/bubbletea" ->
// ("charmbracelet", "bubbletea"). The owner is empty when the path has a
// single segment.
func OwnerAndName(id string) (owner, name string, ok bool) {
	p := id
	if u, err := url.Parse(id); err == nil && u.Path != "" {
		p = u.Path
	}
	p = strings.TrimSuffix(path.Clean("/"+p), "/")
	p = strings.TrimSuffix(p, ".git")

	segments := strings.Split(strings.Trim(p, "/"), "/")
	switch {
	case len(segments) == 0 || segments[len(segments)-1] == "" || segments[len(segments)-1] == ".":
		return "", "", false
	case len(segments) == 1:
		return "", segments[0], true
	default:
		return segments[len(segments)-2], segments[len(segments)-1], true
	}
}
