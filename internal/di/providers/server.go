package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/pressroomapp/pressroom-server/internal/api"
	"github.com/pressroomapp/pressroom-server/internal/config"
	"github.com/pressroomapp/pressroom-server/internal/logger"
	"github.com/pressroomapp/pressroom-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Book:    do.MustInvoke[*service.BookService](i),
		Journal: do.MustInvoke[*service.JournalService](i),
		Author:  do.MustInvoke[*service.AuthorService](i),
		Asset:   do.MustInvoke[*service.AssetService](i),
		Search:  do.MustInvoke[*service.SearchService](i),
	}

	handler := api.NewServer(api.Options{
		Store:          storeHandle.Store,
		Services:       services,
		AdminToken:     cfg.Admin.Token,
		Logger:         log.Logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background.
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	if cfg.Admin.Token == "" {
		log.Warn("No admin token configured, admin endpoints are disabled")
	}

	return &HTTPServerHandle{Server: srv}, nil
}
