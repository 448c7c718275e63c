package response

import (
	"time"

	"movieverse/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genres      []string  `json:"genre"`
	ReleaseDate string    `json:"release_date"`
	Rating      float64   `json:"rating"`
	PosterURL   *string   `json:"poster_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieDetailResponse is the single-movie view: the movie plus its
// reviews, newest first.
type MovieDetailResponse struct {
	Movie   MovieResponse    `json:"movie"`
	Reviews []ReviewResponse `json:"reviews"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Genres:      movie.Genres,
		ReleaseDate: movie.ReleaseDate.Format("2006-01-02"),
		Rating:      movie.Rating,
		PosterURL:   movie.PosterURL,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}
