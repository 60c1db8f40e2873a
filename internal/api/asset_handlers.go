package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	domainerrors "github.com/pressroomapp/pressroom-server/internal/errors"
	"github.com/pressroomapp/pressroom-server/internal/http/response"
	"github.com/pressroomapp/pressroom-server/internal/store"
)

// assetCacheControl is sent with asset bytes. Asset content is immutable
// once uploaded (replacing means uploading a new asset), so long cache
// lifetimes are safe.
const assetCacheControl = "public, max-age=86400"

func (s *Server) registerAssetRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "uploadAsset",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/assets",
		Summary:     "Upload asset",
		Description: "Uploads a file; images get dimensions and a blurhash placeholder",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUploadAsset)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAsset",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/assets/{id}",
		Summary:     "Get asset metadata",
		Description: "Returns asset metadata without the file bytes",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetAsset)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteAsset",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/assets/{id}",
		Summary:     "Delete asset",
		Description: "Deletes an asset's metadata and bytes; records still referencing it resolve to broken URLs",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteAsset)
}

// === DTOs ===

// UploadAssetInput wraps a raw file upload for Huma.
type UploadAssetInput struct {
	Authorization string `header:"Authorization"`
	Filename      string `query:"filename" required:"true" doc:"Original filename, used for display"`
	RawBody       []byte
}

// AssetResponse contains asset metadata plus its resolved URL.
type AssetResponse struct {
	*domain.Asset
	URL string `json:"url" doc:"Path the asset bytes are served from"`
}

// AssetOutput wraps an asset response for Huma.
type AssetOutput struct {
	Body AssetResponse
}

// GetAssetInput contains parameters for reading asset metadata.
type GetAssetInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Asset ID"`
}

// DeleteAssetInput contains parameters for deleting an asset.
type DeleteAssetInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Asset ID"`
}

// === Handlers ===

func (s *Server) handleUploadAsset(ctx context.Context, input *UploadAssetInput) (*AssetOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	asset, err := s.services.Asset.Upload(ctx, input.Filename, input.RawBody)
	if err != nil {
		return nil, err
	}

	return &AssetOutput{Body: AssetResponse{
		Asset: asset,
		URL:   s.services.Asset.AssetURL(asset.ID),
	}}, nil
}

func (s *Server) handleGetAsset(ctx context.Context, input *GetAssetInput) (*AssetOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	asset, err := s.services.Asset.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &AssetOutput{Body: AssetResponse{
		Asset: asset,
		URL:   s.services.Asset.AssetURL(asset.ID),
	}}, nil
}

func (s *Server) handleDeleteAsset(ctx context.Context, input *DeleteAssetInput) (*MessageOutput, error) {
	if err := s.requireAdmin(input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Asset.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Asset deleted"}}, nil
}

// handleServeAsset streams asset bytes. This bypasses huma so large files
// are not buffered through JSON serialization.
func (s *Server) handleServeAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")
	if assetID == "" {
		response.BadRequest(w, "Asset ID is required", s.logger)
		return
	}

	asset, data, err := s.services.Asset.Open(r.Context(), assetID)
	if err != nil {
		var storeErr *store.Error
		if errors.Is(err, domainerrors.ErrNotFound) ||
			(errors.As(err, &storeErr) && storeErr.HTTPCode() == http.StatusNotFound) {
			response.NotFound(w, "Asset not found", s.logger)
			return
		}
		s.logger.Error("Failed to open asset", "error", err, "asset_id", assetID)
		response.InternalError(w, "Failed to read asset", s.logger)
		return
	}

	w.Header().Set("Content-Type", asset.MimeType)
	w.Header().Set("Cache-Control", assetCacheControl)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("Asset write aborted", "error", err, "asset_id", assetID)
	}
}
