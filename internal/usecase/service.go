package usecase

import (
	"movieverse/internal/data/repository"
	"movieverse/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, tokens *utils.TokenManager, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, tokens, log),
		User:   NewUserService(repo, log),
		Movie:  NewMovieService(repo, log),
		Review: NewReviewService(repo, log),
	}
}
