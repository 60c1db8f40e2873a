// Package client provides a Go client for the Pressroom catalog API, plus a
// Pager that implements the load-more accumulation pattern the listing
// endpoints are designed for.
package client

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a decoded error response from the server.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Client talks to a Pressroom server. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	adminToken string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAdminToken attaches a bearer token to every request, enabling the
// admin endpoints.
func WithAdminToken(token string) Option {
	return func(c *Client) { c.adminToken = token }
}

// New creates a client for the server at baseURL (scheme and host, no
// trailing path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListQuery holds the filter parameters for listing endpoints.
// Zero values are omitted and the server applies its defaults.
type ListQuery struct {
	Search string
	Page   int
	Limit  int
	Lang   string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Lang != "" {
		v.Set("lang", q.Lang)
	}
	return v
}

// SearchQuery holds the parameters for the ranked search endpoint.
type SearchQuery struct {
	Query     string
	Types     []string
	Lang      string
	Limit     int
	Offset    int
	Highlight bool
}

func (q SearchQuery) values() url.Values {
	v := url.Values{}
	v.Set("q", q.Query)
	for _, t := range q.Types {
		v.Add("types", t)
	}
	if q.Lang != "" {
		v.Set("lang", q.Lang)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Highlight {
		v.Set("highlight", "true")
	}
	return v
}

// ListBooks fetches one page of published books.
func (c *Client) ListBooks(ctx context.Context, q ListQuery) (*Page[Book], error) {
	return doGet[Page[Book]](ctx, c, "/api/v1/books", q.values())
}

// GetBook fetches a single published book by ID.
func (c *Client) GetBook(ctx context.Context, id string) (*Book, error) {
	return doGet[Book](ctx, c, "/api/v1/books/"+url.PathEscape(id), nil)
}

// ListJournals fetches one page of published journal issues.
func (c *Client) ListJournals(ctx context.Context, q ListQuery) (*Page[Journal], error) {
	return doGet[Page[Journal]](ctx, c, "/api/v1/journals", q.values())
}

// GetJournal fetches a single published journal issue by ID.
func (c *Client) GetJournal(ctx context.Context, id string) (*Journal, error) {
	return doGet[Journal](ctx, c, "/api/v1/journals/"+url.PathEscape(id), nil)
}

// ListAuthors fetches one page of published authors.
func (c *Client) ListAuthors(ctx context.Context, q ListQuery) (*Page[Author], error) {
	return doGet[Page[Author]](ctx, c, "/api/v1/authors", q.values())
}

// GetAuthor fetches a single published author by ID.
func (c *Client) GetAuthor(ctx context.Context, id string) (*Author, error) {
	return doGet[Author](ctx, c, "/api/v1/authors/"+url.PathEscape(id), nil)
}

// AuthorBooks fetches the published books credited to an author.
func (c *Client) AuthorBooks(ctx context.Context, id string) ([]Book, error) {
	type response struct {
		Books []Book `json:"books"`
	}
	resp, err := doGet[response](ctx, c, "/api/v1/authors/"+url.PathEscape(id)+"/books", nil)
	if err != nil {
		return nil, err
	}
	return resp.Books, nil
}

// Search runs a ranked full-text query across the published catalog.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	return doGet[SearchResult](ctx, c, "/api/v1/search", q.values())
}

// BookPager returns a Pager over the book listing. Lang restricts to one
// language when non-empty; limit <= 0 uses the server default page size.
func (c *Client) BookPager(lang string, limit int) *Pager[Book] {
	return NewPager(func(ctx context.Context, search string, page, limit int) ([]Book, error) {
		result, err := c.ListBooks(ctx, ListQuery{Search: search, Page: page, Limit: limit, Lang: lang})
		if err != nil {
			return nil, err
		}
		return result.Items, nil
	}, limit)
}

// JournalPager returns a Pager over the journal listing.
func (c *Client) JournalPager(lang string, limit int) *Pager[Journal] {
	return NewPager(func(ctx context.Context, search string, page, limit int) ([]Journal, error) {
		result, err := c.ListJournals(ctx, ListQuery{Search: search, Page: page, Limit: limit, Lang: lang})
		if err != nil {
			return nil, err
		}
		return result.Items, nil
	}, limit)
}

// AuthorPager returns a Pager over the author listing.
func (c *Client) AuthorPager(limit int) *Pager[Author] {
	return NewPager(func(ctx context.Context, search string, page, limit int) ([]Author, error) {
		result, err := c.ListAuthors(ctx, ListQuery{Search: search, Page: page, Limit: limit})
		if err != nil {
			return nil, err
		}
		return result.Items, nil
	}, limit)
}

func doGet[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.adminToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		// Not all failures carry the JSON envelope (proxies, panics).
		_ = json.Unmarshal(body, apiErr)
		return nil, apiErr
	}

	var out T
	if err := json.Unmarshal(bytes.TrimSpace(body), &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
