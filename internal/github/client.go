// Package github implements repository search against the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"repodepot/internal/domain"
)

// DefaultAPIURL is the public GitHub REST endpoint
const DefaultAPIURL = "https://api.github.com"

// Options configures a Client
type Options struct {
	APIURL    string
	PerPage   int
	UserAgent string
	Token     string
	Timeout   time.Duration
}

// Client searches repositories
type Client struct {
	http    *http.Client
	apiURL  string
	perPage int
	agent   string
	token   string
}

// NewClient creates a search client
func NewClient(opts Options) *Client {
	apiURL := strings.TrimRight(opts.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	perPage := opts.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 30
	}
	agent := opts.UserAgent
	if agent == "" {
		agent = "repo-depot"
	}
	return &Client{
		http:    &http.Client{Timeout: opts.Timeout},
		apiURL:  apiURL,
		perPage: perPage,
		agent:   agent,
		token:   opts.Token,
	}
}

type searchResponse struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []repository `json:"items"`
}

type repository struct {
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	HTMLURL         string  `json:"html_url"`
	CloneURL        string  `json:"clone_url"`
}

type apiError struct {
	Message string `json:"message"`
}

// Search runs a repository search. Every failure is returned as a
// *domain.SearchError.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Repository, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.SearchError{Query: query, Err: domain.ErrEmptyQuery}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(c.perPage))
	endpoint := c.apiURL + "/search/repositories?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.SearchError{Query: query, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	// Correlates the log lines of one search, including retries
	reqID := uuid.NewString()
	start := time.Now()
	log.Printf("GitHub search %s: %s", reqID, endpoint)
	resp, err := doWithRetry(ctx, c.http, req, 0)
	if err != nil {
		log.Printf("GitHub search %s failed after %v: %v", reqID, time.Since(start), err)
		return nil, &domain.SearchError{Query: query, Err: fmt.Errorf("GitHub API request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("GitHub search %s: status %d", reqID, resp.StatusCode)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := http.StatusText(resp.StatusCode)
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return nil, &domain.SearchError{Query: query, Status: resp.StatusCode, Err: fmt.Errorf("GitHub API: %s", msg)}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.SearchError{Query: query, Status: resp.StatusCode, Err: fmt.Errorf("parsing GitHub response: %w", err)}
	}
	if payload.IncompleteResults {
		log.Printf("GitHub search %q returned incomplete results", query)
	}

	results := make([]domain.Repository, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.HTMLURL == "" {
			continue
		}
		results = append(results, toDomain(item))
	}
	log.Printf("GitHub search %s: %d results in %v", reqID, len(results), time.Since(start))
	return results, nil
}

func toDomain(item repository) domain.Repository {
	repo := domain.Repository{
		URL:      item.HTMLURL,
		FullName: item.FullName,
		Name:     item.Name,
		Stars:    item.StargazersCount,
		Forks:    item.ForksCount,
		CloneURL: item.CloneURL,
	}
	if item.Description != nil {
		repo.Description = *item.Description
	}
	if item.Language != nil {
		repo.Language = *item.Language
	}
	return repo
}
