package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressroomapp/pressroom-server/internal/assets"
	"github.com/pressroomapp/pressroom-server/internal/domain"
	domainerrors "github.com/pressroomapp/pressroom-server/internal/errors"
	"github.com/pressroomapp/pressroom-server/internal/id"
	"github.com/pressroomapp/pressroom-server/internal/store"
)

// maxAssetSize caps uploads at 50 MB. Covers and sample PDFs are well
// under this; journal issue PDFs are the largest payload we see.
const maxAssetSize = 50 << 20

// AssetService handles binary uploads: cover images, profile pictures,
// sample PDFs, and journal documents. Bytes live on disk, metadata in the
// store. Image uploads get dimensions and a blurhash placeholder computed
// at upload time.
type AssetService struct {
	store   *store.Store
	storage *assets.Storage
	baseURL string
	logger  *slog.Logger
}

// NewAssetService creates a new asset service. baseURL is the public URL
// prefix clients resolve asset links against, e.g. "/api/v1/assets".
func NewAssetService(store *store.Store, storage *assets.Storage, baseURL string, logger *slog.Logger) *AssetService {
	return &AssetService{
		store:   store,
		storage: storage,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// AssetURL maps an asset ID to its servable URL. Satisfies dto.URLResolver.
func (s *AssetService) AssetURL(assetID string) string {
	if assetID == "" {
		return ""
	}
	return s.baseURL + "/" + assetID
}

// Upload sniffs, inspects, and stores an uploaded file. The content type
// comes from the bytes, never from the client-supplied filename.
func (s *AssetService) Upload(ctx context.Context, filename string, data []byte) (*domain.Asset, error) {
	if len(data) == 0 {
		return nil, domainerrors.Validation("uploaded file is empty")
	}
	if len(data) > maxAssetSize {
		return nil, domainerrors.Validation(fmt.Sprintf("uploaded file exceeds %d bytes", maxAssetSize))
	}

	kind, mimeType := assets.Sniff(data)

	asset := &domain.Asset{
		Record:   domain.Record{ID: id.MustGenerate("asset")},
		Filename: filename,
		MimeType: mimeType,
		Kind:     kind,
		Size:     int64(len(data)),
	}
	asset.InitTimestamps()

	if kind == domain.AssetImage {
		info, err := assets.InspectImage(data)
		if err != nil {
			// MIME sniffing said image but decoding failed. Store it as a
			// plain file rather than rejecting the upload.
			s.logger.Warn("image inspection failed, storing as file",
				"asset_id", asset.ID, "mime_type", mimeType, "error", err)
			asset.Kind = domain.AssetFile
		} else {
			asset.Width = info.Width
			asset.Height = info.Height
			asset.Blurhash = info.Blurhash
		}
	}

	if err := s.storage.Save(asset.ID, data); err != nil {
		return nil, fmt.Errorf("save asset bytes: %w", err)
	}

	if err := s.store.CreateAsset(ctx, asset); err != nil {
		// Roll back the orphaned file so storage and store stay consistent.
		if cleanupErr := s.storage.Delete(asset.ID); cleanupErr != nil {
			s.logger.Warn("failed to clean up asset file after store error",
				"asset_id", asset.ID, "error", cleanupErr)
		}
		return nil, err
	}

	s.logger.Info("asset uploaded",
		"asset_id", asset.ID,
		"filename", filename,
		"mime_type", mimeType,
		"size", asset.Size,
	)

	return asset, nil
}

// Get returns asset metadata.
func (s *AssetService) Get(ctx context.Context, assetID string) (*domain.Asset, error) {
	return s.store.GetAsset(ctx, assetID)
}

// Open returns the asset's metadata and raw bytes for serving.
func (s *AssetService) Open(ctx context.Context, assetID string) (*domain.Asset, []byte, error) {
	asset, err := s.store.GetAsset(ctx, assetID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.storage.Get(assetID)
	if err != nil {
		// Metadata without bytes means the file went missing on disk.
		return nil, nil, domainerrors.Internalf("asset %s has no stored content", assetID)
	}

	return asset, data, nil
}

// Delete removes an asset's metadata and bytes. Unknown IDs are not an
// error. Records referencing the asset keep their ID; views resolve it to
// a URL that will 404.
func (s *AssetService) Delete(ctx context.Context, assetID string) error {
	if err := s.store.DeleteAsset(ctx, assetID); err != nil {
		return err
	}
	if err := s.storage.Delete(assetID); err != nil {
		return fmt.Errorf("delete asset bytes: %w", err)
	}
	s.logger.Info("asset deleted", "asset_id", assetID)
	return nil
}
