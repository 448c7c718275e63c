package wire

import (
	"movieverse/internal/adaptor"
	"movieverse/internal/data/repository"
	"movieverse/pkg/middleware"
	"movieverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Registered before the movieId route so "all" is not matched as an id.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/reviews/all", reviewHandler.GetAllReviews)
	})

	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/reviews/{movieId}", reviewHandler.GetMovieReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, repo.User, log))

		r.Post("/api/reviews", reviewHandler.CreateReview)
		r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
