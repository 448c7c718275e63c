package repository

import (
	"context"
	"fmt"

	"movieverse/internal/data/entity"
	"movieverse/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, movie_id, user_id, review_text, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.MovieID,
		review.UserID,
		review.ReviewText,
		review.Rating,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", review.MovieID.String()),
			zap.String("user_id", review.UserID.String()),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, movie_id, user_id, review_text, rating, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.ReviewText,
		&review.Rating,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by id %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, movie_id, user_id, review_text, rating, created_at, updated_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, movieID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find reviews for movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, movie_id, user_id, review_text, rating, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.ReviewText,
		&review.Rating,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find review by user %s and movie %s: %w",
			userID.String(), movieID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, movie_id, user_id, review_text, rating, created_at, updated_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all reviews", zap.Error(err))
		return nil, fmt.Errorf("find all reviews: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *reviewRepository) collect(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.MovieID,
			&review.UserID,
			&review.ReviewText,
			&review.Rating,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reviews rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE movie_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, movieID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews for movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return 0, fmt.Errorf("count reviews for movie %s: %w", movieID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count all reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET review_text = $2, rating = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.ReviewText,
		review.Rating,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

// DeleteByMovieID removes every review of a movie. Used when the movie
// itself is deleted so no orphaned reviews remain.
func (r *reviewRepository) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	query := `DELETE FROM reviews WHERE movie_id = $1`

	result, err := r.db.Exec(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to delete reviews for movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete reviews for movie %s: %w", movieID.String(), err)
	}

	r.log.Debug("Reviews deleted for movie",
		zap.String("movie_id", movieID.String()),
		zap.Int64("count", result.RowsAffected()),
	)
	return nil
}
