// Package api provides the HTTP API server and handlers for the Pressroom
// catalog. Public read endpoints serve only published records; admin
// endpoints behind a bearer token see everything.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pressroomapp/pressroom-server/internal/http/response"
	"github.com/pressroomapp/pressroom-server/internal/store"
)

// Version is reported in the OpenAPI document and the health endpoint.
// Overridden at build time via -ldflags.
var Version = "dev"

// Server holds dependencies for HTTP handlers.
type Server struct {
	store        *store.Store
	services     *Services
	router       *chi.Mux
	api          huma.API
	logger       *slog.Logger
	adminToken   string
	writeLimiter *RateLimiter
}

// Options configures the HTTP server.
type Options struct {
	Store      *store.Store
	Services   *Services
	AdminToken string
	Logger     *slog.Logger

	// AllowedOrigins for CORS. Empty means same-origin only.
	AllowedOrigins []string
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(opts Options) *Server {
	s := &Server{
		store:      opts.Store,
		services:   opts.Services,
		router:     chi.NewRouter(),
		logger:     opts.Logger,
		adminToken: opts.AdminToken,
		// Admin writes come from a handful of editors; 60/min with a
		// burst of 20 is generous for humans and stops runaway scripts.
		writeLimiter: NewRateLimiter(60, time.Minute, 20),
	}

	s.setupMiddleware(opts.AllowedOrigins)

	humaConfig := huma.DefaultConfig("Pressroom API", Version)
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:   "http",
			Scheme: "bearer",
		},
	}
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerBookRoutes()
	s.registerJournalRoutes()
	s.registerAuthorRoutes()
	s.registerAssetRoutes()
	s.registerSearchRoutes()

	// Asset bytes are streamed outside huma; see asset_handlers.go.
	s.router.Get("/api/v1/assets/{id}", s.handleServeAsset)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(allowedOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// Mutating requests all come from the admin surface; read traffic is
	// left alone so public listing pages are never throttled.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
				key := getClientIP(r)
				if !s.writeLimiter.Allow(key) {
					s.logger.Warn("Rate limit exceeded", "ip", key, "path", r.URL.Path)
					response.TooManyRequests(w, "Too many requests. Please try again later.", s.logger)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	})

	if len(allowedOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}
}
