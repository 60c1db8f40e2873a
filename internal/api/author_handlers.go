package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pressroomapp/pressroom-server/internal/dto"
	"github.com/pressroomapp/pressroom-server/internal/service"
)

func (s *Server) registerAuthorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAuthors",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors",
		Summary:     "List authors",
		Description: "Returns a page of published authors, newest first",
		Tags:        []string{"Authors"},
	}, s.handleListAuthors)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAuthor",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors/{id}",
		Summary:     "Get author",
		Description: "Returns a published author by ID",
		Tags:        []string{"Authors"},
	}, s.handleGetAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAuthorBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors/{id}/books",
		Summary:     "Get author books",
		Description: "Returns the published books credited to an author",
		Tags:        []string{"Authors"},
	}, s.handleGetAuthorBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminListAuthors",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/authors",
		Summary:     "List all authors",
		Description: "Returns a page of authors including drafts",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdminListAuthors)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminGetAuthor",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/authors/{id}",
		Summary:     "Get any author",
		Description: "Returns an author by ID, draft or published",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdminGetAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminGetAuthorBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/authors/{id}/books",
		Summary:     "Get all author books",
		Description: "Returns every book credited to an author, including drafts",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdminGetAuthorBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "createAuthor",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/authors",
		Summary:     "Create author",
		Description: "Creates a new author, draft by default",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateAuthor",
		Method:      http.MethodPatch,
		Path:        "/api/v1/admin/authors/{id}",
		Summary:     "Update author",
		Description: "Applies a partial update to an author",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteAuthor",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/authors/{id}",
		Summary:     "Delete author",
		Description: "Deletes an author; their books keep the dangling credit",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteAuthor)
}

// === DTOs ===

// AuthorListParams are the query parameters for author listings. Authors
// carry no language, so there is no lang filter here.
type AuthorListParams struct {
	Search string `query:"search" doc:"Case-sensitive substring matched against name or bio"`
	Page   int    `query:"page" doc:"1-based page number" example:"1"`
	Limit  int    `query:"limit" doc:"Page size, defaults to 10"`
}

// listOptions converts query parameters into service options.
func (p AuthorListParams) listOptions(publishedOnly bool) service.ListOptions {
	return service.ListOptions{
		Search:        p.Search,
		Page:          p.Page,
		Limit:         p.Limit,
		PublishedOnly: publishedOnly,
	}
}

// ListAuthorsInput contains parameters for the public author listing.
type ListAuthorsInput struct {
	AuthorListParams
}

// ListAuthorsOutput wraps a page of authors for Huma.
type ListAuthorsOutput struct {
	Body service.ListResult[*dto.Author]
}

// AdminListAuthorsInput contains parameters for the admin author listing.
type AdminListAuthorsInput struct {
	Authorization string `header:"Authorization"`
	AuthorListParams
}

// GetAuthorInput contains parameters for getting an author.
type GetAuthorInput struct {
	ID string `path:"id" doc:"Author ID"`
}

// AdminGetAuthorInput contains parameters for getting any author.
type AdminGetAuthorInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Author ID"`
}

// AuthorOutput wraps a single author for Huma.
type AuthorOutput struct {
	Body *dto.Author
}

// AuthorBooksResponse contains the books credited to an author.
type AuthorBooksResponse struct {
	Books []*dto.Book `json:"books"`
}

// AuthorBooksOutput wraps an author's books for Huma.
type AuthorBooksOutput struct {
	Body AuthorBooksResponse
}

// CreateAuthorInput wraps the create author request for Huma.
type CreateAuthorInput struct {
	Authorization string `header:"Authorization"`
	Body          service.CreateAuthorInput
}

// UpdateAuthorInput wraps the update author request for Huma.
type UpdateAuthorInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Author ID"`
	Body          service.UpdateAuthorInput
}

// DeleteAuthorInput contains parameters for deleting an author.
type DeleteAuthorInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Author ID"`
}

// === Handlers ===

func (s *Server) handleListAuthors(ctx context.Context, input *ListAuthorsInput) (*ListAuthorsOutput, error) {
	result, err := s.services.Author.List(ctx, input.listOptions(true))
	if err != nil {
		return nil, err
	}
	return &ListAuthorsOutput{Body: *result}, nil
}

func (s *Server) handleGetAuthor(ctx context.Context, input *GetAuthorInput) (*AuthorOutput, error) {
	author, err := s.services.Author.Get(ctx, input.ID, true)
	if err != nil {
		return nil, err
	}
	return &AuthorOutput{Body: author}, nil
}

func (s *Server) handleGetAuthorBooks(ctx context.Context, input *GetAuthorInput) (*AuthorBooksOutput, error) {
	books, err := s.services.Author.Books(ctx, input.ID, true)
	if err != nil {
		return nil, err
	}
	return &AuthorBooksOutput{Body: AuthorBooksResponse{Books: books}}, nil
}

func (s *Server) handleAdminListAuthors(ctx context.Context, input *AdminListAuthorsInput) (*ListAuthorsOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	result, err := s.services.Author.List(ctx, input.listOptions(false))
	if err != nil {
		return nil, err
	}
	return &ListAuthorsOutput{Body: *result}, nil
}

func (s *Server) handleAdminGetAuthor(ctx context.Context, input *AdminGetAuthorInput) (*AuthorOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	author, err := s.services.Author.Get(ctx, input.ID, false)
	if err != nil {
		return nil, err
	}
	return &AuthorOutput{Body: author}, nil
}

func (s *Server) handleAdminGetAuthorBooks(ctx context.Context, input *AdminGetAuthorInput) (*AuthorBooksOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	books, err := s.services.Author.Books(ctx, input.ID, false)
	if err != nil {
		return nil, err
	}
	return &AuthorBooksOutput{Body: AuthorBooksResponse{Books: books}}, nil
}

func (s *Server) handleCreateAuthor(ctx context.Context, input *CreateAuthorInput) (*AuthorOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	author, err := s.services.Author.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &AuthorOutput{Body: author}, nil
}

func (s *Server) handleUpdateAuthor(ctx context.Context, input *UpdateAuthorInput) (*AuthorOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	author, err := s.services.Author.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &AuthorOutput{Body: author}, nil
}

func (s *Server) handleDeleteAuthor(ctx context.Context, input *DeleteAuthorInput) (*MessageOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Author.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Author deleted"}}, nil
}
