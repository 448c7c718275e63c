package request

type CreateReviewRequest struct {
	MovieID    string   `json:"movie_id" validate:"required,uuid4"`
	ReviewText string   `json:"review_text" validate:"required,min=1,max=2000"`
	Rating     *float64 `json:"rating" validate:"required,min=0,max=10"`
}

type UpdateReviewRequest struct {
	ReviewText *string  `json:"review_text,omitempty" validate:"omitempty,min=1,max=2000"`
	Rating     *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
}
