package adaptor

import (
	"context"

	"movieverse/internal/data/entity"
	"movieverse/internal/usecase"
	"movieverse/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Movie  *MovieHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
	}
}

// callerFromContext rebuilds the authenticated caller the auth
// middleware stored on the request.
func callerFromContext(ctx context.Context) (usecase.Caller, bool) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return usecase.Caller{}, false
	}

	role, ok := utils.GetRoleFromContext(ctx)
	if !ok {
		return usecase.Caller{}, false
	}

	return usecase.Caller{
		ID:   userID,
		Role: entity.UserRole(role),
	}, true
}
