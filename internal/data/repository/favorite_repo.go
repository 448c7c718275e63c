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

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	Find(ctx context.Context, userID, movieID uuid.UUID) (*entity.Favorite, error)
	FindMoviesByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Movie, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, movieID uuid.UUID) error
	DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	query := `
		INSERT INTO user_favorites (id, user_id, movie_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.MovieID,
		favorite.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.String("user_id", favorite.UserID.String()),
			zap.String("movie_id", favorite.MovieID.String()),
		)
		return fmt.Errorf("create favorite for user %s: %w", favorite.UserID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) Find(ctx context.Context, userID, movieID uuid.UUID) (*entity.Favorite, error) {
	query := `
		SELECT id, user_id, movie_id, created_at
		FROM user_favorites
		WHERE user_id = $1 AND movie_id = $2
	`

	var favorite entity.Favorite
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&favorite.ID,
		&favorite.UserID,
		&favorite.MovieID,
		&favorite.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find favorite: %w", err)
	}

	return &favorite, nil
}

func (r *favoriteRepository) FindMoviesByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT m.id, m.title, m.description, m.genres, m.release_date, m.rating,
		       m.poster_url, m.created_at, m.updated_at
		FROM movies m
		INNER JOIN user_favorites f ON m.id = f.movie_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find favorite movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorite movies for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genres,
			&movie.ReleaseDate,
			&movie.Rating,
			&movie.PosterURL,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan favorite movie row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate favorite movies rows: %w", err)
	}

	return movies, nil
}

func (r *favoriteRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM user_favorites WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count favorites for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite not found")
	}

	return nil
}

func (r *favoriteRepository) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	query := `DELETE FROM user_favorites WHERE movie_id = $1`

	if _, err := r.db.Exec(ctx, query, movieID); err != nil {
		r.log.Error("Failed to delete favorites for movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete favorites for movie %s: %w", movieID.String(), err)
	}

	return nil
}
