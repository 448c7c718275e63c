package usecase

import (
	"context"
	"fmt"
	"time"

	"movieverse/internal/data/entity"
	"movieverse/internal/data/repository"
	"movieverse/internal/dto/request"
	"movieverse/internal/dto/response"
	"movieverse/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, caller Caller, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetAllReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	UpdateReview(ctx context.Context, caller Caller, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, caller Caller, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, caller Caller, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id %s: %w", req.MovieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	existing, err := s.repo.Review.FindByUserAndMovie(ctx, caller.ID, movieID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("already reviewed this movie")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:    movieID,
		UserID:     caller.ID,
		ReviewText: req.ReviewText,
		Rating:     *req.Rating,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", caller.ID.String()),
			zap.String("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	username := ""
	if user, err := s.repo.User.FindByID(ctx, caller.ID); err == nil && user != nil {
		username = user.Username
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", caller.ID.String()),
		zap.String("movie_id", req.MovieID),
		zap.Float64("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review, username)
	return &resp, nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id %s: %w", movieID, err)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get movie reviews", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	total, err := s.repo.Review.CountByMovieID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to count movie reviews", zap.Error(err))
		return nil, fmt.Errorf("count movie reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		username := ""
		if user, err := s.repo.User.FindByID(ctx, review.UserID); err == nil && user != nil {
			username = user.Username
		}
		reviewResponses[i] = response.ReviewToResponse(review, username)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.Limit(), total), nil
}

// GetAllReviews is the admin view: every review, enriched with movie
// title and author username/email.
func (s *reviewService) GetAllReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.Review.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all reviews", zap.Error(err))
		return nil, fmt.Errorf("get all reviews: %w", err)
	}

	total, err := s.repo.Review.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		username, email := "", ""
		if user, err := s.repo.User.FindByID(ctx, review.UserID); err == nil && user != nil {
			username = user.Username
			email = user.Email
		}

		movieTitle := ""
		if movie, err := s.repo.Movie.FindByID(ctx, review.MovieID); err == nil && movie != nil {
			movieTitle = movie.Title
		}

		reviewResponses[i] = response.ReviewToAdminResponse(review, movieTitle, username, email)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.Limit(), total), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, caller Caller, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review id %s: %w", reviewID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review not found")
	}

	if !CanModifyReview(caller, review) {
		s.log.Warn("Review update denied",
			zap.String("review_id", reviewID),
			zap.String("caller_id", caller.ID.String()),
			zap.String("role", string(caller.Role)),
		)
		return nil, fmt.Errorf("not authorized to edit this review")
	}

	// Only the supplied fields change.
	updated := false

	if req.ReviewText != nil {
		review.ReviewText = *req.ReviewText
		updated = true
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
		updated = true
	}

	if updated {
		review.UpdatedAt = time.Now()
		if err := s.repo.Review.Update(ctx, review); err != nil {
			s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
			return nil, fmt.Errorf("update review: %w", err)
		}
	}

	username := ""
	if user, err := s.repo.User.FindByID(ctx, review.UserID); err == nil && user != nil {
		username = user.Username
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("caller_id", caller.ID.String()),
		zap.Bool("was_updated", updated),
	)

	resp := response.ReviewToResponse(review, username)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, caller Caller, reviewID string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review id %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review not found")
	}

	if !CanDeleteReview(caller, review) {
		s.log.Warn("Review delete denied",
			zap.String("review_id", reviewID),
			zap.String("caller_id", caller.ID.String()),
			zap.String("role", string(caller.Role)),
		)
		return fmt.Errorf("not authorized to delete this review")
	}

	if err := s.repo.Review.Delete(ctx, reviewUUID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("caller_id", caller.ID.String()),
		zap.String("movie_id", review.MovieID.String()),
	)

	return nil
}
