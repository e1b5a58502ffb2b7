package wire

import (
	"context"
	"net/http"
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// App holds the wired router and the services background jobs need
type App struct {
	Router  http.Handler
	Service *usecase.Service
}

// guards are the shared route middlewares
type guards struct {
	auth  func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

// Wiring builds services, handlers and the router
func Wiring(
	db database.PgxIface,
	repo *repository.Repository,
	metadata usecase.MetadataProvider,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, metadata, config, logger)
	handler := adaptor.NewHandler(service, logger)

	g := guards{
		auth:  middleware.AuthSession(service.Auth, logger),
		admin: middleware.Admin(repo.User, logger),
	}

	router := setupRouter(db, handler, g, logger)

	return &App{
		Router:  otelhttp.NewHandler(router, config.App.Name),
		Service: service,
	}
}

func setupRouter(
	db database.PgxIface,
	handler *adaptor.Handler,
	g guards,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireMovie(r, handler.Movie, g)
	wireReview(r, handler.Review, g)
	wireMetadata(r, handler.Metadata)
	wireActivity(r, handler.Activity, g)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "Database unavailable")
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
