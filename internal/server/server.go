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

	"github.com/feybrew/cauldron/internal/brewing"
	"github.com/feybrew/cauldron/internal/character"
	"github.com/feybrew/cauldron/internal/database"
	"github.com/feybrew/cauldron/internal/discord"
	"github.com/feybrew/cauldron/internal/handler"
	"github.com/feybrew/cauldron/internal/logger"
	"github.com/feybrew/cauldron/internal/metrics"
	"github.com/feybrew/cauldron/internal/recipe"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	brewingService   brewing.Service
	recipeService    recipe.Service
	characterService character.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, dbPool database.Pool, brewingService brewing.Service, recipeService recipe.Service, characterService character.Service, announcer *discord.Announcer) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		brewHandler := handler.NewBrewHandler(brewingService, characterService, announcer)
		r.Route("/brew", func(r chi.Router) {
			r.Post("/", brewHandler.HandleBrew)
			r.Post("/preview", brewHandler.HandlePreview)
		})

		recipeHandler := handler.NewRecipeHandler(recipeService)
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipeHandler.HandleGetRecipes)
			r.Post("/unlock", recipeHandler.HandleUnlockRecipe)
		})

		characterHandler := handler.NewCharacterHandler(characterService)
		r.Route("/characters", func(r chi.Router) {
			r.Post("/", characterHandler.HandleCreateCharacter)
			r.Get("/", characterHandler.HandleListCharacters)

			r.Route("/{characterID}", func(r chi.Router) {
				r.Get("/", characterHandler.HandleGetCharacter)
				r.Put("/equipment", characterHandler.HandleSetEquipment)
				r.Get("/ingredients", characterHandler.HandleGetIngredients)
				r.Post("/ingredients", characterHandler.HandleGrantIngredient)
				r.Get("/artifacts", characterHandler.HandleGetArtifacts)
			})
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
		dbPool:           dbPool,
		brewingService:   brewingService,
		recipeService:    recipeService,
		characterService: characterService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
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

		// Skip logging for health check endpoints and metrics
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
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
