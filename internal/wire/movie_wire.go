package wire

import (
	"movieverse/internal/adaptor"
	"movieverse/internal/data/repository"
	"movieverse/pkg/middleware"
	"movieverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovie)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/movies", movieHandler.CreateMovie)
		r.Put("/api/movies/{id}", movieHandler.UpdateMovie)
		r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)
	})
}
