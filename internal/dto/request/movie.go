package request

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required"`
	Genres      []string `json:"genre" validate:"required,min=1"`
	ReleaseDate string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	PosterURL   *string  `json:"poster_url,omitempty" validate:"omitempty,url"`
}

// MovieUpdateRequest carries only the fields the caller wants changed.
type MovieUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Genres      []string `json:"genre,omitempty" validate:"omitempty,min=1"`
	ReleaseDate *string  `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	PosterURL   *string  `json:"poster_url,omitempty" validate:"omitempty,url"`
}
