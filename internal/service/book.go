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

// BookService orchestrates book operations.
type BookService struct {
	store     *store.Store
	enricher  *dto.Enricher
	logger    *slog.Logger
	validator *validation.Validator
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, enricher *dto.Enricher, logger *slog.Logger) *BookService {
	return &BookService{
		store:     store,
		enricher:  enricher,
		logger:    logger,
		validator: validation.New(),
	}
}

// List returns one page of books matching the options, newest first.
func (s *BookService) List(ctx context.Context, opts ListOptions) (*ListResult[*dto.Book], error) {
	opts.normalize()

	books, err := s.store.AllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	filtered := books[:0:0]
	for _, book := range books {
		if opts.PublishedOnly && !book.IsPublished() {
			continue
		}
		if opts.Lang != "" && book.Lang != opts.Lang {
			continue
		}
		if !matchesSearch(book.Title, opts.Search) {
			continue
		}
		filtered = append(filtered, book)
	}

	slices.SortStableFunc(filtered, func(a, b *domain.Book) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	page, hasMore := paginate(filtered, opts.Page, opts.Limit)

	views, err := s.enricher.EnrichBooks(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("enrich books: %w", err)
	}

	return &ListResult[*dto.Book]{
		Items:   views,
		Page:    opts.Page,
		Limit:   opts.Limit,
		HasMore: hasMore,
	}, nil
}

// Get retrieves a single book. When publishedOnly is set, draft books are
// reported as not found rather than forbidden, so the public surface never
// reveals their existence.
func (s *BookService) Get(ctx context.Context, bookID string, publishedOnly bool) (*dto.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !book.IsPublished() {
		return nil, domainerrors.NotFound("book not found")
	}
	return s.enricher.EnrichBook(ctx, book)
}

// CreateBookInput holds the fields for a new book.
type CreateBookInput struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Description   string   `json:"description,omitempty" validate:"max=5000"`
	Lang          string   `json:"lang" validate:"required,oneof=en ta"`
	MRPPrice      *float64 `json:"mrp_price,omitempty" validate:"omitempty,gte=0"`
	OfferPrice    *float64 `json:"offer_price,omitempty" validate:"omitempty,gte=0"`
	AmazonLink    string   `json:"amazon_link,omitempty" validate:"omitempty,url"`
	FlipkartLink  string   `json:"flipkart_link,omitempty" validate:"omitempty,url"`
	CoverFront    string   `json:"cover_front,omitempty"`
	CoverBack     string   `json:"cover_back,omitempty"`
	SamplePDF     string   `json:"sample_pdf,omitempty"`
	AuthorID      string   `json:"author_id,omitempty"`
	PublishStatus string   `json:"publish_status,omitempty" validate:"omitempty,oneof=draft published"`
}

// Create stores a new book. New books default to draft unless a status is
// given. An author reference must point at an existing author.
func (s *BookService) Create(ctx context.Context, input CreateBookInput) (*dto.Book, error) {
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

	if err := s.checkAuthorExists(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	book := &domain.Book{
		Record:        domain.Record{ID: id.MustGenerate("book")},
		Title:         input.Title,
		Description:   input.Description,
		Lang:          lang,
		MRPPrice:      input.MRPPrice,
		OfferPrice:    input.OfferPrice,
		AmazonLink:    input.AmazonLink,
		FlipkartLink:  input.FlipkartLink,
		CoverFront:    input.CoverFront,
		CoverBack:     input.CoverBack,
		SamplePDF:     input.SamplePDF,
		AuthorID:      input.AuthorID,
		PublishStatus: status,
	}
	book.InitTimestamps()

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info("book created", "book_id", book.ID, "title", book.Title, "lang", book.Lang)

	return s.enricher.EnrichBook(ctx, book)
}

// UpdateBookInput holds a partial update. Nil pointers leave the stored
// value untouched; a pointer to the zero value clears the field. Prices
// cannot be cleared through a patch, only replaced.
type UpdateBookInput struct {
	Title         *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Lang          *string  `json:"lang,omitempty" validate:"omitempty,oneof=en ta"`
	MRPPrice      *float64 `json:"mrp_price,omitempty" validate:"omitempty,gte=0"`
	OfferPrice    *float64 `json:"offer_price,omitempty" validate:"omitempty,gte=0"`
	AmazonLink    *string  `json:"amazon_link,omitempty"`
	FlipkartLink  *string  `json:"flipkart_link,omitempty"`
	CoverFront    *string  `json:"cover_front,omitempty"`
	CoverBack     *string  `json:"cover_back,omitempty"`
	SamplePDF     *string  `json:"sample_pdf,omitempty"`
	AuthorID      *string  `json:"author_id,omitempty"`
	PublishStatus *string  `json:"publish_status,omitempty" validate:"omitempty,oneof=draft published"`
}

// Update merges the patch into the stored book.
func (s *BookService) Update(ctx context.Context, bookID string, input UpdateBookInput) (*dto.Book, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerrors.Validation("title cannot be empty")
		}
		book.Title = *input.Title
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.Lang != nil {
		lang, err := domain.ParseLanguage(*input.Lang)
		if err != nil {
			return nil, domainerrors.Validation("unsupported language: " + *input.Lang)
		}
		book.Lang = lang
	}
	if input.MRPPrice != nil {
		book.MRPPrice = input.MRPPrice
	}
	if input.OfferPrice != nil {
		book.OfferPrice = input.OfferPrice
	}
	if input.AmazonLink != nil {
		book.AmazonLink = *input.AmazonLink
	}
	if input.FlipkartLink != nil {
		book.FlipkartLink = *input.FlipkartLink
	}
	if input.CoverFront != nil {
		book.CoverFront = *input.CoverFront
	}
	if input.CoverBack != nil {
		book.CoverBack = *input.CoverBack
	}
	if input.SamplePDF != nil {
		book.SamplePDF = *input.SamplePDF
	}
	if input.AuthorID != nil {
		if err := s.checkAuthorExists(ctx, *input.AuthorID); err != nil {
			return nil, err
		}
		book.AuthorID = *input.AuthorID
	}
	if input.PublishStatus != nil {
		status := domain.PublishStatus(*input.PublishStatus)
		if !status.IsValid() {
			return nil, domainerrors.Validation("invalid publish status: " + *input.PublishStatus)
		}
		book.PublishStatus = status
	}

	if err := s.store.UpdateBook(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info("book updated", "book_id", book.ID)

	return s.enricher.EnrichBook(ctx, book)
}

// Delete removes a book. Deleting an unknown ID is not an error.
func (s *BookService) Delete(ctx context.Context, bookID string) error {
	if err := s.store.DeleteBook(ctx, bookID); err != nil {
		return err
	}
	s.logger.Info("book deleted", "book_id", bookID)
	return nil
}

// checkAuthorExists rejects dangling author references at write time.
// An empty ID means "no author" and is always accepted.
func (s *BookService) checkAuthorExists(ctx context.Context, authorID string) error {
	if authorID == "" {
		return nil
	}
	if _, err := s.store.GetAuthor(ctx, authorID); err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return domainerrors.Validation("author does not exist: " + authorID)
		}
		return err
	}
	return nil
}
