package store

import (
	"context"
	"errors"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// CreateJournal stores a new journal issue.
func (s *Store) CreateJournal(ctx context.Context, journal *domain.Journal) error {
	if journal.ID == "" {
		return ErrInvalidInput.WithMessage("journal ID is required")
	}

	if err := s.journals.Create(ctx, journal.ID, journal); err != nil {
		return err
	}

	s.indexAsync("index journal", func(ctx context.Context) error {
		return s.searchIndexer.IndexJournal(ctx, journal)
	})
	return nil
}

// GetJournal retrieves a journal by ID. Returns ErrNotFound if absent.
func (s *Store) GetJournal(ctx context.Context, id string) (*domain.Journal, error) {
	journal, err := s.journals.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound.WithMessage("journal not found")
		}
		return nil, err
	}
	return journal, nil
}

// UpdateJournal replaces a stored journal. Returns ErrNotFound if absent.
func (s *Store) UpdateJournal(ctx context.Context, journal *domain.Journal) error {
	journal.Touch()
	if err := s.journals.Update(ctx, journal.ID, journal); err != nil {
		return err
	}

	s.indexAsync("reindex journal", func(ctx context.Context) error {
		return s.searchIndexer.IndexJournal(ctx, journal)
	})
	return nil
}

// DeleteJournal removes a journal. Idempotent.
func (s *Store) DeleteJournal(ctx context.Context, id string) error {
	if err := s.journals.Delete(ctx, id); err != nil {
		return err
	}

	s.indexAsync("deindex journal", func(ctx context.Context) error {
		return s.searchIndexer.DeleteJournal(ctx, id)
	})
	return nil
}

// AllJournals returns every stored journal, in key order.
func (s *Store) AllJournals(ctx context.Context) ([]*domain.Journal, error) {
	return s.journals.All(ctx)
}
