package store

import (
	"context"
	"errors"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// CreateBook stores a new book. The caller is responsible for assigning the
// ID and timestamps (see service.BookService.Create).
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	if book.ID == "" {
		return ErrInvalidInput.WithMessage("book ID is required")
	}

	if err := s.books.Create(ctx, book.ID, book); err != nil {
		return err
	}

	s.indexAsync("index book", func(ctx context.Context) error {
		return s.searchIndexer.IndexBook(ctx, book)
	})
	return nil
}

// GetBook retrieves a book by ID. Returns ErrNotFound if absent.
func (s *Store) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.books.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound.WithMessage("book not found")
		}
		return nil, err
	}
	return book, nil
}

// UpdateBook replaces a stored book. Returns ErrNotFound if absent.
func (s *Store) UpdateBook(ctx context.Context, book *domain.Book) error {
	book.Touch()
	if err := s.books.Update(ctx, book.ID, book); err != nil {
		return err
	}

	s.indexAsync("reindex book", func(ctx context.Context) error {
		return s.searchIndexer.IndexBook(ctx, book)
	})
	return nil
}

// DeleteBook removes a book. Idempotent.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	if err := s.books.Delete(ctx, id); err != nil {
		return err
	}

	s.indexAsync("deindex book", func(ctx context.Context) error {
		return s.searchIndexer.DeleteBook(ctx, id)
	})
	return nil
}

// AllBooks returns every stored book, in key order.
func (s *Store) AllBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.books.All(ctx)
}
