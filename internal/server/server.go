package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/character"
	"github.com/tessera-games/loreforge/internal/database"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/handler"
	"github.com/tessera-games/loreforge/internal/library"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/metrics"
	"github.com/tessera-games/loreforge/internal/repository"
)

// Deps bundles everything the router needs. Keeping construction in one
// place keeps main small and the wiring testable.
type Deps struct {
	DBPool           database.Pool
	PartRepo         repository.Part
	Loader           catalog.Loader
	Snapshots        catalog.Snapshots
	CharacterService character.Service
	LibraryService   library.Service
	EventBus         event.Bus
	CatalogDir       string
}

type Server struct {
	httpServer *http.Server
	deps       Deps
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, deps Deps) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		rulesHandlers := handler.NewRulesHandlers(deps.CharacterService)
		r.Route("/rules", func(r chi.Router) {
			r.Get("/progression", rulesHandlers.HandleGetProgression())
			r.Post("/ability/check", rulesHandlers.HandleCheckAbilities())
			r.Get("/archetypes", rulesHandlers.HandleGetArchetypes())
			r.Get("/archetypes/{kind}", rulesHandlers.HandleGetArchetype())
		})

		deriveHandlers := handler.NewDeriveHandlers(deps.Snapshots)
		r.Route("/derive", func(r chi.Router) {
			r.Post("/power", deriveHandlers.HandleDerivePower())
			r.Post("/technique", deriveHandlers.HandleDeriveTechnique())
			r.Post("/item", deriveHandlers.HandleDeriveItem())
		})

		partsHandlers := handler.NewPartsHandlers(deps.Snapshots)
		r.Get("/parts", partsHandlers.HandleListParts())

		libraryHandlers := handler.NewLibraryHandlers(deps.LibraryService)
		r.Route("/library", func(r chi.Router) {
			r.Route("/drafts", func(r chi.Router) {
				r.Post("/", libraryHandlers.HandleCreateDraft())
				r.Get("/", libraryHandlers.HandleListDrafts())
				r.Get("/{id}", libraryHandlers.HandleGetDraft())
				r.Put("/{id}", libraryHandlers.HandleUpdateDraft())
				r.Delete("/{id}", libraryHandlers.HandleDeleteDraft())
			})
		})

		adminHandlers := handler.NewAdminHandlers(deps.Loader, deps.PartRepo, deps.Snapshots, deps.EventBus, deps.CatalogDir)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/reload-parts", adminHandlers.HandleReloadParts())
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		deps: deps,
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and metrics scrapes would drown the log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
