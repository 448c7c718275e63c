package response

import (
	"time"

	"movieverse/internal/data/entity"
)

type ReviewResponse struct {
	ID          string    `json:"id"`
	MovieID     string    `json:"movie_id"`
	MovieTitle  string    `json:"movie_title,omitempty"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	AuthorEmail string    `json:"author_email,omitempty"`
	ReviewText  string    `json:"review_text"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewToResponse enriches a review with its author's username. The
// admin listing additionally fills movie title and author email via
// ReviewToAdminResponse.
func ReviewToResponse(review *entity.Review, username string) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		MovieID:    review.MovieID.String(),
		UserID:     review.UserID.String(),
		Username:   username,
		ReviewText: review.ReviewText,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func ReviewToAdminResponse(review *entity.Review, movieTitle, username, email string) ReviewResponse {
	resp := ReviewToResponse(review, username)
	resp.MovieTitle = movieTitle
	resp.AuthorEmail = email
	return resp
}
