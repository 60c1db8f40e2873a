package store

import (
	"context"
	"errors"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// CreateAsset stores an asset metadata document. Asset bytes live on the
// filesystem (see the assets package); the store holds only the descriptor.
func (s *Store) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	if asset.ID == "" {
		return ErrInvalidInput.WithMessage("asset ID is required")
	}
	return s.assets.Create(ctx, asset.ID, asset)
}

// GetAsset retrieves an asset descriptor by ID. Returns ErrNotFound if absent.
func (s *Store) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	asset, err := s.assets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound.WithMessage("asset not found")
		}
		return nil, err
	}
	return asset, nil
}

// DeleteAsset removes an asset descriptor. Idempotent.
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	return s.assets.Delete(ctx, id)
}

// AllAssets returns every stored asset descriptor, in key order.
func (s *Store) AllAssets(ctx context.Context) ([]*domain.Asset, error) {
	return s.assets.All(ctx)
}
