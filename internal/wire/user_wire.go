package wire

import (
	"movieverse/internal/adaptor"
	"movieverse/internal/data/repository"
	"movieverse/pkg/middleware"
	"movieverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Get("/api/user/favorites", userHandler.GetFavorites)
		r.Post("/api/user/favorites/{movieId}", userHandler.AddFavorite)
		r.Delete("/api/user/favorites/{movieId}", userHandler.RemoveFavorite)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/users", userHandler.GetAllUsers)
		r.Delete("/api/users/{id}", userHandler.DeleteUser)
	})
}
