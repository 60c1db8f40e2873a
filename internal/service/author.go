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

// AuthorService orchestrates author operations.
type AuthorService struct {
	store     *store.Store
	enricher  *dto.Enricher
	logger    *slog.Logger
	validator *validation.Validator
}

// NewAuthorService creates a new author service.
func NewAuthorService(store *store.Store, enricher *dto.Enricher, logger *slog.Logger) *AuthorService {
	return &AuthorService{
		store:     store,
		enricher:  enricher,
		logger:    logger,
		validator: validation.New(),
	}
}

// List returns one page of authors matching the options, newest first.
// The search term matches the author's name or bio.
func (s *AuthorService) List(ctx context.Context, opts ListOptions) (*ListResult[*dto.Author], error) {
	opts.normalize()

	authors, err := s.store.AllAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	filtered := authors[:0:0]
	for _, author := range authors {
		if opts.PublishedOnly && !author.IsPublished() {
			continue
		}
		if !matchesSearch(author.Name, opts.Search) && !matchesSearch(author.Bio, opts.Search) {
			continue
		}
		filtered = append(filtered, author)
	}

	slices.SortStableFunc(filtered, func(a, b *domain.Author) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	page, hasMore := paginate(filtered, opts.Page, opts.Limit)

	return &ListResult[*dto.Author]{
		Items:   s.enricher.EnrichAuthors(page),
		Page:    opts.Page,
		Limit:   opts.Limit,
		HasMore: hasMore,
	}, nil
}

// Get retrieves a single author. When publishedOnly is set, unpublished
// authors are reported as not found.
func (s *AuthorService) Get(ctx context.Context, authorID string, publishedOnly bool) (*dto.Author, error) {
	author, err := s.store.GetAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !author.IsPublished() {
		return nil, domainerrors.NotFound("author not found")
	}
	return s.enricher.EnrichAuthor(author), nil
}

// Books returns the author's books, newest first. Used for the author
// detail page, which shows the bibliography inline.
func (s *AuthorService) Books(ctx context.Context, authorID string, publishedOnly bool) ([]*dto.Book, error) {
	// Verify the author exists so a bad ID is a 404, not an empty list.
	if _, err := s.store.GetAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	books, err := s.store.AllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list author books: %w", err)
	}

	own := books[:0:0]
	for _, book := range books {
		if book.AuthorID != authorID {
			continue
		}
		if publishedOnly && !book.IsPublished() {
			continue
		}
		own = append(own, book)
	}

	slices.SortStableFunc(own, func(a, b *domain.Book) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return s.enricher.EnrichBooks(ctx, own)
}

// CreateAuthorInput holds the fields for a new author.
type CreateAuthorInput struct {
	Name          string `json:"name" validate:"required,max=200"`
	Bio           string `json:"bio,omitempty" validate:"max=5000"`
	ProfilePic    string `json:"profile_pic,omitempty"`
	PublishStatus string `json:"publish_status,omitempty" validate:"omitempty,oneof=draft published"`
}

// Create stores a new author, defaulting to draft.
func (s *AuthorService) Create(ctx context.Context, input CreateAuthorInput) (*dto.Author, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	status := domain.PublishStatus(input.PublishStatus)
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.IsValid() {
		return nil, domainerrors.Validation("invalid publish status: " + input.PublishStatus)
	}

	author := &domain.Author{
		Record:        domain.Record{ID: id.MustGenerate("author")},
		Name:          input.Name,
		Bio:           input.Bio,
		ProfilePic:    input.ProfilePic,
		PublishStatus: status,
	}
	author.InitTimestamps()

	if err := s.store.CreateAuthor(ctx, author); err != nil {
		return nil, err
	}

	s.logger.Info("author created", "author_id", author.ID, "name", author.Name)

	return s.enricher.EnrichAuthor(author), nil
}

// UpdateAuthorInput holds a partial update. Nil pointers leave the stored
// value untouched.
type UpdateAuthorInput struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Bio           *string `json:"bio,omitempty" validate:"omitempty,max=5000"`
	ProfilePic    *string `json:"profile_pic,omitempty"`
	PublishStatus *string `json:"publish_status,omitempty" validate:"omitempty,oneof=draft published"`
}

// Update merges the patch into the stored author.
func (s *AuthorService) Update(ctx context.Context, authorID string, input UpdateAuthorInput) (*dto.Author, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	author, err := s.store.GetAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.Validation("name cannot be empty")
		}
		author.Name = *input.Name
	}
	if input.Bio != nil {
		author.Bio = *input.Bio
	}
	if input.ProfilePic != nil {
		author.ProfilePic = *input.ProfilePic
	}
	if input.PublishStatus != nil {
		status := domain.PublishStatus(*input.PublishStatus)
		if !status.IsValid() {
			return nil, domainerrors.Validation("invalid publish status: " + *input.PublishStatus)
		}
		author.PublishStatus = status
	}

	if err := s.store.UpdateAuthor(ctx, author); err != nil {
		return nil, err
	}

	s.logger.Info("author updated", "author_id", author.ID)

	return s.enricher.EnrichAuthor(author), nil
}

// Delete removes an author. Books referencing the author keep their
// author_id; views simply render without an author summary.
func (s *AuthorService) Delete(ctx context.Context, authorID string) error {
	if err := s.store.DeleteAuthor(ctx, authorID); err != nil {
		return err
	}
	s.logger.Info("author deleted", "author_id", authorID)
	return nil
}
