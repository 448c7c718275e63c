package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movieverse/internal/data/entity"
	"movieverse/internal/data/repository"
	"movieverse/internal/dto/request"
	"movieverse/internal/dto/response"
	"movieverse/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(movieResponses, req.Page, req.Limit(), total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// The detail view carries every review the movie has, newest first.
	reviews, err := s.repo.Review.FindByMovieID(ctx, id, allReviewsLimit, 0)
	if err != nil {
		s.log.Error("Failed to get reviews for movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get reviews for movie: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		username := ""
		if user, err := s.repo.User.FindByID(ctx, review.UserID); err == nil && user != nil {
			username = user.Username
		}
		reviewResponses[i] = response.ReviewToResponse(review, username)
	}

	return &response.MovieDetailResponse{
		Movie:   response.MovieToResponse(movie),
		Reviews: reviewResponses,
	}, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if invalid := entity.InvalidGenres(req.Genres); len(invalid) > 0 {
		return nil, fmt.Errorf("invalid genre selection: %s", strings.Join(invalid, ", "))
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date %s: %w", req.ReleaseDate, err)
	}

	existing, err := s.repo.Movie.FindByTitle(ctx, req.Title)
	if err != nil {
		s.log.Error("Failed to check movie title", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("check title: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("movie title already exists")
	}

	rating := 0.0
	if req.Rating != nil {
		rating = utils.ClampRating(*req.Rating)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		ReleaseDate: releaseDate,
		Rating:      rating,
		PosterURL:   req.PosterURL,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Strings("genres", movie.Genres),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id %s: %w", movieID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// Partial patch: fields left out of the payload keep their value.
	updated := false

	if req.Title != nil && *req.Title != movie.Title {
		existing, err := s.repo.Movie.FindByTitle(ctx, *req.Title)
		if err != nil {
			return nil, fmt.Errorf("check title: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("movie title already exists")
		}
		movie.Title = *req.Title
		updated = true
	}

	if req.Description != nil {
		movie.Description = *req.Description
		updated = true
	}

	if req.Genres != nil {
		if invalid := entity.InvalidGenres(req.Genres); len(invalid) > 0 {
			return nil, fmt.Errorf("invalid genre selection: %s", strings.Join(invalid, ", "))
		}
		movie.Genres = req.Genres
		updated = true
	}

	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date %s: %w", *req.ReleaseDate, err)
		}
		movie.ReleaseDate = releaseDate
		updated = true
	}

	if req.Rating != nil {
		movie.Rating = utils.ClampRating(*req.Rating)
		updated = true
	}

	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
		updated = true
	}

	if updated {
		movie.UpdatedAt = time.Now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.Bool("was_updated", updated),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
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

	// Reviews and favorites go with the movie so nothing dangles.
	if err := s.repo.Review.DeleteByMovieID(ctx, id); err != nil {
		s.log.Error("Failed to delete reviews for movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete reviews for movie: %w", err)
	}

	if err := s.repo.Favorite.DeleteByMovieID(ctx, id); err != nil {
		s.log.Error("Failed to delete favorites for movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete favorites for movie: %w", err)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}

// allReviewsLimit bounds the review join on the movie detail view.
const allReviewsLimit = 1000
