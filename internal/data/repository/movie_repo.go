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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, description, genres, release_date, rating,
		                    poster_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.ReleaseDate,
		movie.Rating,
		movie.PosterURL,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, genres, release_date, rating,
		       poster_url, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, genres, release_date, rating,
		       poster_url, created_at, updated_at
		FROM movies
		WHERE title = $1
	`

	return r.scanOne(ctx, query, title)
}

func (r *movieRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, arg).Scan(
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

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie", zap.Error(err))
		return nil, fmt.Errorf("find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, genres, release_date, rating,
		       poster_url, created_at, updated_at
		FROM movies
		ORDER BY release_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all movies: %w", err)
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
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movies rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count all movies: %w", err)
	}

	return count, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, genres = $4, release_date = $5,
		    rating = $6, poster_url = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.ReleaseDate,
		movie.Rating,
		movie.PosterURL,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", movie.ID.String())
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", id.String())
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
