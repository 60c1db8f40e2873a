package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pressroomapp/pressroom-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchCatalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search catalog",
		Description: "Ranked full-text search across published books, journals, and authors",
		Tags:        []string{"Search"},
	}, s.handleSearch)

	huma.Register(s.api, huma.Operation{
		OperationID: "reindexSearch",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/search/reindex",
		Summary:     "Rebuild search index",
		Description: "Drops and rebuilds the full-text index from the store",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleReindexSearch)
}

// === DTOs ===

// SearchInput contains parameters for catalog search.
type SearchInput struct {
	Query     string   `query:"q" required:"true" minLength:"1" doc:"Search query"`
	Types     []string `query:"types" doc:"Restrict to document types: book, journal, author"`
	Lang      string   `query:"lang" enum:"en,ta" doc:"Restrict to one language"`
	Limit     int      `query:"limit" doc:"Maximum hits to return, defaults to 20"`
	Offset    int      `query:"offset" doc:"Hits to skip for pagination"`
	Highlight bool     `query:"highlight" doc:"Include match highlighting"`
}

// SearchOutput wraps search results for Huma.
type SearchOutput struct {
	Body search.Result
}

// ReindexInput contains parameters for rebuilding the search index.
type ReindexInput struct {
	Authorization string `header:"Authorization"`
}

// ReindexResponse reports the rebuilt index size.
type ReindexResponse struct {
	Documents uint64 `json:"documents" doc:"Documents in the index after the rebuild"`
}

// ReindexOutput wraps the reindex response for Huma.
type ReindexOutput struct {
	Body ReindexResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	// The public surface never exposes drafts, in search or anywhere else.
	result, err := s.services.Search.Search(ctx, search.Params{
		Query:         input.Query,
		Types:         input.Types,
		Lang:          input.Lang,
		PublishedOnly: true,
		Limit:         input.Limit,
		Offset:        input.Offset,
		Highlight:     input.Highlight,
	})
	if err != nil {
		return nil, err
	}
	return &SearchOutput{Body: *result}, nil
}

func (s *Server) handleReindexSearch(ctx context.Context, input *ReindexInput) (*ReindexOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Search.ReindexAll(ctx); err != nil {
		return nil, err
	}

	count, err := s.services.Search.DocumentCount()
	if err != nil {
		return nil, err
	}
	return &ReindexOutput{Body: ReindexResponse{Documents: count}}, nil
}
