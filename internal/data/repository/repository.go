package repository

import (
	"movieverse/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Movie    MovieRepository
	Review   ReviewRepository
	Favorite FavoriteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
	}
}
