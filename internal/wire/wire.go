package wire

import (
	"context"
	"net/http"
	"time"

	"rk-commerce/internal/adaptor"
	"rk-commerce/internal/data/repository"
	"rk-commerce/internal/usecase"
	"rk-commerce/pkg/middleware"
	"rk-commerce/pkg/token"
	"rk-commerce/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthChecker is the store probe behind /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies. health may be nil, in which
// case /health only reports that the process is up.
func Wiring(repo *repository.Repository, health HealthChecker, tokens *token.Manager, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, service, health, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	health HealthChecker,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, utils.ErrorResponse{Detail: "Method Not Allowed"})
	})

	requireAuth := middleware.Auth(service.Auth, logger)

	// Apply routes
	mountAPI(r, config.App.APIPrefix, func(api chi.Router) {
		api.Get("/", adaptor.Root)
		wireAuth(api, handler.Auth, config)
		wireUser(api, handler.User, requireAuth)
		wireProduct(api, handler.Product)
		wireCart(api, handler.Cart, requireAuth)
		wireOrder(api, handler.Order, requireAuth)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := health.Ping(ctx); err != nil {
				logger.Warn("Health check failed", zap.Error(err))
				utils.ResponseJSON(w, http.StatusServiceUnavailable, utils.ErrorResponse{Detail: "database unavailable"})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// mountAPI registers routes under prefix, or at the root when prefix is empty.
func mountAPI(r chi.Router, prefix string, routes func(chi.Router)) {
	if prefix == "" {
		r.Group(routes)
		return
	}
	r.Route(prefix, routes)
}
