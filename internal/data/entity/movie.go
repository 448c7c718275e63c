package entity

import (
	"time"
)

type Movie struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Genres      []string  `db:"genres"`
	ReleaseDate time.Time `db:"release_date"`
	Rating      float64   `db:"rating"` // 0-10
	PosterURL   *string   `db:"poster_url"`
}
