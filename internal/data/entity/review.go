package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	MovieID    uuid.UUID `db:"movie_id"`
	UserID     uuid.UUID `db:"user_id"`
	ReviewText string    `db:"review_text"`
	Rating     float64   `db:"rating"` // 0-10
}
