package usecase

import (
	"context"
	"fmt"
	"time"

	"movieverse/internal/data/entity"
	"movieverse/internal/data/repository"
	"movieverse/internal/dto/request"
	"movieverse/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, caller Caller) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, userID string) error

	GetFavorites(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	AddFavorite(ctx context.Context, caller Caller, movieID string) error
	RemoveFavorite(ctx context.Context, caller Caller, movieID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, caller Caller) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, caller.ID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", caller.ID.String()))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit(), total), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted",
		zap.String("user_id", userID),
		zap.String("username", user.Username),
	)

	return nil
}

func (s *userService) GetFavorites(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Favorite.FindMoviesByUserID(ctx, caller.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get favorites", zap.Error(err), zap.String("user_id", caller.ID.String()))
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	total, err := s.repo.Favorite.CountByUserID(ctx, caller.ID)
	if err != nil {
		s.log.Error("Failed to count favorites", zap.Error(err))
		return nil, fmt.Errorf("count favorites: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return response.NewPaginatedResponse(movieResponses, req.Page, req.Limit(), total), nil
}

func (s *userService) AddFavorite(ctx context.Context, caller Caller, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie id %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	existing, err := s.repo.Favorite.Find(ctx, caller.ID, id)
	if err != nil {
		return fmt.Errorf("check favorite: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("movie already in favorites")
	}

	favorite := &entity.Favorite{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  caller.ID,
		MovieID: id,
	}

	if err := s.repo.Favorite.Create(ctx, favorite); err != nil {
		s.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", caller.ID.String()),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info("Favorite added",
		zap.String("user_id", caller.ID.String()),
		zap.String("movie_id", movieID),
	)

	return nil
}

func (s *userService) RemoveFavorite(ctx context.Context, caller Caller, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie id %s: %w", movieID, err)
	}

	existing, err := s.repo.Favorite.Find(ctx, caller.ID, id)
	if err != nil {
		return fmt.Errorf("check favorite: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("favorite not found")
	}

	if err := s.repo.Favorite.Delete(ctx, caller.ID, id); err != nil {
		s.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", caller.ID.String()),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.log.Info("Favorite removed",
		zap.String("user_id", caller.ID.String()),
		zap.String("movie_id", movieID),
	)

	return nil
}
