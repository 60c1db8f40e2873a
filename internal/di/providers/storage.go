package providers

import (
	"github.com/samber/do/v2"

	"github.com/pressroomapp/pressroom-server/internal/assets"
	"github.com/pressroomapp/pressroom-server/internal/config"
	"github.com/pressroomapp/pressroom-server/internal/logger"
)

// ProvideAssetStorage provides the filesystem storage for uploaded assets.
func ProvideAssetStorage(i do.Injector) (*assets.Storage, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	storage, err := assets.NewStorage(cfg.AssetsPath())
	if err != nil {
		return nil, err
	}

	log.Info("Asset storage initialized", "path", cfg.AssetsPath())

	return storage, nil
}
