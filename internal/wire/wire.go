package wire

import (
	"net/http"
	"time"

	"movieverse/internal/adaptor"
	"movieverse/internal/data/repository"
	"movieverse/internal/usecase"
	"movieverse/pkg/middleware"
	"movieverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// App holds the wired application dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, tokens *utils.TokenManager, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))

	wireAuth(r, handler.Auth, repo, tokens, logger)
	wireUser(r, handler.User, repo, tokens, logger)
	wireMovie(r, handler.Movie, repo, tokens, logger)
	wireReview(r, handler.Review, repo, tokens, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
