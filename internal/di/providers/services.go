package providers

import (
	"github.com/samber/do/v2"

	"github.com/pressroomapp/pressroom-server/internal/assets"
	"github.com/pressroomapp/pressroom-server/internal/config"
	"github.com/pressroomapp/pressroom-server/internal/dto"
	"github.com/pressroomapp/pressroom-server/internal/logger"
	"github.com/pressroomapp/pressroom-server/internal/service"
)

// ProvideAssetService provides the asset service.
func ProvideAssetService(i do.Injector) (*service.AssetService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	storage := do.MustInvoke[*assets.Storage](i)
	log := do.MustInvoke[*logger.Logger](i)

	baseURL := cfg.Server.PublicBaseURL + "/api/v1/assets"
	return service.NewAssetService(storeHandle.Store, storage, baseURL, log.Logger), nil
}

// ProvideEnricher provides the view enricher that resolves asset references
// to URLs and attaches author summaries.
func ProvideEnricher(i do.Injector) (*dto.Enricher, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	assetService := do.MustInvoke[*service.AssetService](i)

	return dto.NewEnricher(storeHandle.Store, assetService), nil
}

// ProvideBookService provides the book service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	enricher := do.MustInvoke[*dto.Enricher](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, enricher, log.Logger), nil
}

// ProvideJournalService provides the journal service.
func ProvideJournalService(i do.Injector) (*service.JournalService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	enricher := do.MustInvoke[*dto.Enricher](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewJournalService(storeHandle.Store, enricher, log.Logger), nil
}

// ProvideAuthorService provides the author service.
func ProvideAuthorService(i do.Injector) (*service.AuthorService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	enricher := do.MustInvoke[*dto.Enricher](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthorService(storeHandle.Store, enricher, log.Logger), nil
}
