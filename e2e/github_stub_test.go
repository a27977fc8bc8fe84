//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// stubRepo is one entry returned by the search stub
type stubRepo struct {
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	HTMLURL         string  `json:"html_url"`
	CloneURL        string  `json:"clone_url"`
}

// GitHubStub serves /search/repositories from canned results keyed by query
type GitHubStub struct {
	*httptest.Server

	mu      sync.Mutex
	results map[string][]stubRepo
	failing map[string]int
	queries []string
}

// NewGitHubStub starts a search stub that is closed with the test
func NewGitHubStub(t *testing.T) *GitHubStub {
	stub := &GitHubStub{
		results: make(map[string][]stubRepo),
		failing: make(map[string]int),
	}
	stub.Server = httptest.NewServer(http.HandlerFunc(stub.handle))
	t.Cleanup(stub.Close)
	return stub
}

// AddResult registers a repository returned for query
func (s *GitHubStub) AddResult(query, owner, name, url, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	repo := stubRepo{
		Name:            name,
		FullName:        owner + "/" + name,
		StargazersCount: 42,
		ForksCount:      7,
		HTMLURL:         url,
		CloneURL:        url,
	}
	if description != "" {
		repo.Description = &description
	}
	s.results[query] = append(s.results[query], repo)
}

// Fail makes every search for query answer with status
func (s *GitHubStub) Fail(query string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[query] = status
}

// Queries returns the queries received so far
func (s *GitHubStub) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *GitHubStub) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/search/repositories" {
		http.NotFound(w, r)
		return
	}
	query := r.URL.Query().Get("q")

	s.mu.Lock()
	s.queries = append(s.queries, query)
	status, failing := s.failing[query]
	items := s.results[strings.TrimSpace(query)]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if failing {
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"message": "stub failure for %s"}`, query)
		return
	}
	if items == nil {
		items = []stubRepo{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"total_count":        len(items),
		"incomplete_results": false,
		"items":              items,
	})
}
