package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/pressroomapp/pressroom-server/internal/dto"
	"github.com/pressroomapp/pressroom-server/internal/service"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns a page of published books, newest first",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Description: "Returns a published book by ID",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminListBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/books",
		Summary:     "List all books",
		Description: "Returns a page of books including drafts",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdminListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminGetBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/books/{id}",
		Summary:     "Get any book",
		Description: "Returns a book by ID, draft or published",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdminGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "createBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/books",
		Summary:     "Create book",
		Description: "Creates a new book, draft by default",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBook",
		Method:      http.MethodPatch,
		Path:        "/api/v1/admin/books/{id}",
		Summary:     "Update book",
		Description: "Applies a partial update to a book",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBook",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/books/{id}",
		Summary:     "Delete book",
		Description: "Deletes a book; deleting an absent book succeeds",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteBook)
}

// === DTOs ===

// ListParams are the shared query parameters for catalog listings.
type ListParams struct {
	Search string `query:"search" doc:"Case-sensitive substring matched against titles"`
	Page   int    `query:"page" doc:"1-based page number" example:"1"`
	Limit  int    `query:"limit" doc:"Page size, defaults to 10"`
	Lang   string `query:"lang" enum:"en,ta" doc:"Restrict to one language"`
}

// listOptions converts query parameters into service options.
func (p ListParams) listOptions(publishedOnly bool) service.ListOptions {
	return service.ListOptions{
		Search:        p.Search,
		Page:          p.Page,
		Limit:         p.Limit,
		Lang:          domain.Language(p.Lang),
		PublishedOnly: publishedOnly,
	}
}

// ListBooksInput contains parameters for the public book listing.
type ListBooksInput struct {
	ListParams
}

// ListBooksOutput wraps a page of books for Huma.
type ListBooksOutput struct {
	Body service.ListResult[*dto.Book]
}

// AdminListBooksInput contains parameters for the admin book listing.
type AdminListBooksInput struct {
	Authorization string `header:"Authorization"`
	ListParams
}

// GetBookInput contains parameters for getting a book.
type GetBookInput struct {
	ID string `path:"id" doc:"Book ID"`
}

// AdminGetBookInput contains parameters for getting any book.
type AdminGetBookInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Book ID"`
}

// BookOutput wraps a single book for Huma.
type BookOutput struct {
	Body *dto.Book
}

// CreateBookInput wraps the create book request for Huma.
type CreateBookInput struct {
	Authorization string `header:"Authorization"`
	Body          service.CreateBookInput
}

// UpdateBookInput wraps the update book request for Huma.
type UpdateBookInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Book ID"`
	Body          service.UpdateBookInput
}

// DeleteBookInput contains parameters for deleting a book.
type DeleteBookInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Book ID"`
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, input *ListBooksInput) (*ListBooksOutput, error) {
	result, err := s.services.Book.List(ctx, input.listOptions(true))
	if err != nil {
		return nil, err
	}
	return &ListBooksOutput{Body: *result}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookOutput, error) {
	book, err := s.services.Book.Get(ctx, input.ID, true)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: book}, nil
}

func (s *Server) handleAdminListBooks(ctx context.Context, input *AdminListBooksInput) (*ListBooksOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	result, err := s.services.Book.List(ctx, input.listOptions(false))
	if err != nil {
		return nil, err
	}
	return &ListBooksOutput{Body: *result}, nil
}

func (s *Server) handleAdminGetBook(ctx context.Context, input *AdminGetBookInput) (*BookOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	book, err := s.services.Book.Get(ctx, input.ID, false)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: book}, nil
}

func (s *Server) handleCreateBook(ctx context.Context, input *CreateBookInput) (*BookOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	book, err := s.services.Book.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: book}, nil
}

func (s *Server) handleUpdateBook(ctx context.Context, input *UpdateBookInput) (*BookOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	book, err := s.services.Book.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: book}, nil
}

func (s *Server) handleDeleteBook(ctx context.Context, input *DeleteBookInput) (*MessageOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Book.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Book deleted"}}, nil
}
