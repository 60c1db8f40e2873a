package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pressroomapp/pressroom-server/internal/dto"
	"github.com/pressroomapp/pressroom-server/internal/service"
)

func (s *Server) registerJournalRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listJournals",
		Method:      http.MethodGet,
		Path:        "/api/v1/journals",
		Summary:     "List journals",
		Description: "Returns a page of published journal issues, most recent issue first",
		Tags:        []string{"Journals"},
	}, s.handleListJournals)

	huma.Register(s.api, huma.Operation{
		OperationID: "getJournal",
		Method:      http.MethodGet,
		Path:        "/api/v1/journals/{id}",
		Summary:     "Get journal",
		Description: "Returns a published journal issue by ID",
		Tags:        []string{"Journals"},
	}, s.handleGetJournal)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminListJournals",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/journals",
		Summary:     "List all journals",
		Description: "Returns a page of journal issues including drafts",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdminListJournals)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminGetJournal",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/journals/{id}",
		Summary:     "Get any journal",
		Description: "Returns a journal issue by ID, draft or published",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdminGetJournal)

	huma.Register(s.api, huma.Operation{
		OperationID: "createJournal",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/journals",
		Summary:     "Create journal",
		Description: "Creates a new journal issue, draft by default",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateJournal)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateJournal",
		Method:      http.MethodPatch,
		Path:        "/api/v1/admin/journals/{id}",
		Summary:     "Update journal",
		Description: "Applies a partial update to a journal issue",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateJournal)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteJournal",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/journals/{id}",
		Summary:     "Delete journal",
		Description: "Deletes a journal issue; deleting an absent issue succeeds",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteJournal)
}

// === DTOs ===

// ListJournalsInput contains parameters for the public journal listing.
type ListJournalsInput struct {
	ListParams
}

// ListJournalsOutput wraps a page of journal issues for Huma.
type ListJournalsOutput struct {
	Body service.ListResult[*dto.Journal]
}

// AdminListJournalsInput contains parameters for the admin journal listing.
type AdminListJournalsInput struct {
	Authorization string `header:"Authorization"`
	ListParams
}

// GetJournalInput contains parameters for getting a journal issue.
type GetJournalInput struct {
	ID string `path:"id" doc:"Journal ID"`
}

// AdminGetJournalInput contains parameters for getting any journal issue.
type AdminGetJournalInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Journal ID"`
}

// JournalOutput wraps a single journal issue for Huma.
type JournalOutput struct {
	Body *dto.Journal
}

// CreateJournalInput wraps the create journal request for Huma.
type CreateJournalInput struct {
	Authorization string `header:"Authorization"`
	Body          service.CreateJournalInput
}

// UpdateJournalInput wraps the update journal request for Huma.
type UpdateJournalInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Journal ID"`
	Body          service.UpdateJournalInput
}

// DeleteJournalInput contains parameters for deleting a journal issue.
type DeleteJournalInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Journal ID"`
}

// === Handlers ===

func (s *Server) handleListJournals(ctx context.Context, input *ListJournalsInput) (*ListJournalsOutput, error) {
	result, err := s.services.Journal.List(ctx, input.listOptions(true))
	if err != nil {
		return nil, err
	}
	return &ListJournalsOutput{Body: *result}, nil
}

func (s *Server) handleGetJournal(ctx context.Context, input *GetJournalInput) (*JournalOutput, error) {
	journal, err := s.services.Journal.Get(ctx, input.ID, true)
	if err != nil {
		return nil, err
	}
	return &JournalOutput{Body: journal}, nil
}

func (s *Server) handleAdminListJournals(ctx context.Context, input *AdminListJournalsInput) (*ListJournalsOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	result, err := s.services.Journal.List(ctx, input.listOptions(false))
	if err != nil {
		return nil, err
	}
	return &ListJournalsOutput{Body: *result}, nil
}

func (s *Server) handleAdminGetJournal(ctx context.Context, input *AdminGetJournalInput) (*JournalOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	journal, err := s.services.Journal.Get(ctx, input.ID, false)
	if err != nil {
		return nil, err
	}
	return &JournalOutput{Body: journal}, nil
}

func (s *Server) handleCreateJournal(ctx context.Context, input *CreateJournalInput) (*JournalOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	journal, err := s.services.Journal.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &JournalOutput{Body: journal}, nil
}

func (s *Server) handleUpdateJournal(ctx context.Context, input *UpdateJournalInput) (*JournalOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	journal, err := s.services.Journal.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &JournalOutput{Body: journal}, nil
}

func (s *Server) handleDeleteJournal(ctx context.Context, input *DeleteJournalInput) (*MessageOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Journal.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Journal deleted"}}, nil
}
