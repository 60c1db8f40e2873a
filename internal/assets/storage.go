// Package assets provides filesystem storage and processing for uploaded
// files: cover images, author photos, and sample documents.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage manages asset filesystem operations.
// Thread-safe for concurrent operations.
type Storage struct {
	basePath string
	mu       sync.RWMutex // Protects file operations
}

// NewStorage creates a new Storage instance.
// basePath should be the metadata directory; asset bytes are stored in
// {basePath}/assets/, one file per asset ID.
func NewStorage(basePath string) (*Storage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}

	storagePath := filepath.Join(basePath, "assets")

	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}

	return &Storage{
		basePath: storagePath,
	}, nil
}

// Save stores the bytes for an asset.
func (s *Storage) Save(id string, data []byte) error {
	if id == "" {
		return fmt.Errorf("asset ID cannot be empty")
	}
	if len(data) == 0 {
		return fmt.Errorf("asset data cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.Path(id), data, 0644); err != nil {
		return fmt.Errorf("failed to write asset file: %w", err)
	}
	return nil
}

// Get retrieves the bytes for an asset.
func (s *Storage) Get(id string) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("asset ID cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("asset not found for %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to read asset file: %w", err)
	}
	return data, nil
}

// Exists checks if bytes exist for an asset.
func (s *Storage) Exists(id string) bool {
	if id == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.Path(id))
	return err == nil
}

// Delete removes the bytes for an asset. Idempotent.
func (s *Storage) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("asset ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete asset file: %w", err)
	}
	return nil
}

// Path returns the filesystem path for an asset ID.
func (s *Storage) Path(id string) string {
	return filepath.Join(s.basePath, id)
}
