package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/pressroomapp/pressroom-server/internal/dto"
	domainerrors "github.com/pressroomapp/pressroom-server/internal/errors"
	"github.com/pressroomapp/pressroom-server/internal/id"
	"github.com/pressroomapp/pressroom-server/internal/store"
	"github.com/pressroomapp/pressroom-server/internal/validation"
)

// JournalService orchestrates journal issue operations.
type JournalService struct {
	store     *store.Store
	enricher  *dto.Enricher
	logger    *slog.Logger
	validator *validation.Validator
}

// NewJournalService creates a new journal service.
func NewJournalService(store *store.Store, enricher *dto.Enricher, logger *slog.Logger) *JournalService {
	return &JournalService{
		store:     store,
		enricher:  enricher,
		logger:    logger,
		validator: validation.New(),
	}
}

// List returns one page of journal issues matching the options.
//
// Issues sort by year descending, then month descending. Month is free text
// entered by editors, so the month tie-break is a plain string comparison
// on the raw value rather than a calendar ordering.
func (s *JournalService) List(ctx context.Context, opts ListOptions) (*ListResult[*dto.Journal], error) {
	opts.normalize()

	journals, err := s.store.AllJournals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}

	filtered := journals[:0:0]
	for _, journal := range journals {
		if opts.PublishedOnly && !journal.IsPublished() {
			continue
		}
		if opts.Lang != "" && journal.Lang != opts.Lang {
			continue
		}
		if !matchesSearch(journal.Title, opts.Search) {
			continue
		}
		filtered = append(filtered, journal)
	}

	slices.SortStableFunc(filtered, func(a, b *domain.Journal) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		if c := strings.Compare(b.Month, a.Month); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	page, hasMore := paginate(filtered, opts.Page, opts.Limit)

	return &ListResult[*dto.Journal]{
		Items:   s.enricher.EnrichJournals(page),
		Page:    opts.Page,
		Limit:   opts.Limit,
		HasMore: hasMore,
	}, nil
}

// Get retrieves a single journal issue. When publishedOnly is set, drafts
// are reported as not found.
func (s *JournalService) Get(ctx context.Context, journalID string, publishedOnly bool) (*dto.Journal, error) {
	journal, err := s.store.GetJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !journal.IsPublished() {
		return nil, domainerrors.NotFound("journal not found")
	}
	return s.enricher.EnrichJournal(journal), nil
}

// CreateJournalInput holds the fields for a new journal issue.
type CreateJournalInput struct {
	Title         string `json:"title" validate:"required,max=200"`
	Description   string `json:"description,omitempty" validate:"max=5000"`
	Lang          string `json:"lang" validate:"required,oneof=en ta"`
	Month         string `json:"month,omitempty" validate:"max=50"`
	Year          int    `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	Document      string `json:"document,omitempty"`
	PublishStatus string `json:"publish_status,omitempty" validate:"omitempty,oneof=draft published"`
}

// Create stores a new journal issue, defaulting to draft.
func (s *JournalService) Create(ctx context.Context, input CreateJournalInput) (*dto.Journal, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	lang, err := domain.ParseLanguage(input.Lang)
	if err != nil {
		return nil, domainerrors.Validation("unsupported language: " + input.Lang)
	}

	status := domain.PublishStatus(input.PublishStatus)
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.IsValid() {
		return nil, domainerrors.Validation("invalid publish status: " + input.PublishStatus)
	}

	journal := &domain.Journal{
		Record:        domain.Record{ID: id.MustGenerate("journal")},
		Title:         input.Title,
		Description:   input.Description,
		Lang:          lang,
		Month:         input.Month,
		Year:          input.Year,
		Document:      input.Document,
		PublishStatus: status,
	}
	journal.InitTimestamps()

	if err := s.store.CreateJournal(ctx, journal); err != nil {
		return nil, err
	}

	s.logger.Info("journal created", "journal_id", journal.ID, "title", journal.Title)

	return s.enricher.EnrichJournal(journal), nil
}

// UpdateJournalInput holds a partial update. Nil pointers leave the stored
// value untouched.
type UpdateJournalInput struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Lang          *string `json:"lang,omitempty" validate:"omitempty,oneof=en ta"`
	Month         *string `json:"month,omitempty" validate:"omitempty,max=50"`
	Year          *int    `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	Document      *string `json:"document,omitempty"`
	PublishStatus *string `json:"publish_status,omitempty" validate:"omitempty,oneof=draft published"`
}

// Update merges the patch into the stored journal issue.
func (s *JournalService) Update(ctx context.Context, journalID string, input UpdateJournalInput) (*dto.Journal, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	journal, err := s.store.GetJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerrors.Validation("title cannot be empty")
		}
		journal.Title = *input.Title
	}
	if input.Description != nil {
		journal.Description = *input.Description
	}
	if input.Lang != nil {
		lang, err := domain.ParseLanguage(*input.Lang)
		if err != nil {
			return nil, domainerrors.Validation("unsupported language: " + *input.Lang)
		}
		journal.Lang = lang
	}
	if input.Month != nil {
		journal.Month = *input.Month
	}
	if input.Year != nil {
		journal.Year = *input.Year
	}
	if input.Document != nil {
		journal.Document = *input.Document
	}
	if input.PublishStatus != nil {
		status := domain.PublishStatus(*input.PublishStatus)
		if !status.IsValid() {
			return nil, domainerrors.Validation("invalid publish status: " + *input.PublishStatus)
		}
		journal.PublishStatus = status
	}

	if err := s.store.UpdateJournal(ctx, journal); err != nil {
		return nil, err
	}

	s.logger.Info("journal updated", "journal_id", journal.ID)

	return s.enricher.EnrichJournal(journal), nil
}

// Delete removes a journal issue. Deleting an unknown ID is not an error.
func (s *JournalService) Delete(ctx context.Context, journalID string) error {
	if err := s.store.DeleteJournal(ctx, journalID); err != nil {
		return err
	}
	s.logger.Info("journal deleted", "journal_id", journalID)
	return nil
}
