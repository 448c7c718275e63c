package usecase

import (
	"context"

	"movieverse/internal/data/entity"
	"movieverse/internal/data/repository"

	"github.com/google/uuid"
)

// Hand-written repository mocks. Each method delegates to a function
// field so tests only stub what they touch.

type mockUserRepo struct {
	CreateFn         func(ctx context.Context, user *entity.User) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	FindAllFn        func(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAllFn       func(ctx context.Context) (int64, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.FindByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.FindByUsernameFn(ctx, username)
}

func (m *mockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return m.FindAllFn(ctx, limit, offset)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	return m.CountAllFn(ctx)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

type mockMovieRepo struct {
	CreateFn      func(ctx context.Context, movie *entity.Movie) error
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByTitleFn func(ctx context.Context, title string) (*entity.Movie, error)
	FindAllFn     func(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	CountAllFn    func(ctx context.Context) (int64, error)
	UpdateFn      func(ctx context.Context, movie *entity.Movie) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return m.CreateFn(ctx, movie)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockMovieRepo) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return m.FindByTitleFn(ctx, title)
}

func (m *mockMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	return m.FindAllFn(ctx, limit, offset)
}

func (m *mockMovieRepo) CountAll(ctx context.Context) (int64, error) {
	return m.CountAllFn(ctx)
}

func (m *mockMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	return m.UpdateFn(ctx, movie)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

type mockReviewRepo struct {
	CreateFn             func(ctx context.Context, review *entity.Review) error
	FindByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByMovieIDFn      func(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindByUserAndMovieFn func(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error)
	FindAllFn            func(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	CountByMovieIDFn     func(ctx context.Context, movieID uuid.UUID) (int64, error)
	CountAllFn           func(ctx context.Context) (int64, error)
	UpdateFn             func(ctx context.Context, review *entity.Review) error
	DeleteFn             func(ctx context.Context, id uuid.UUID) error
	DeleteByMovieIDFn    func(ctx context.Context, movieID uuid.UUID) error
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return m.CreateFn(ctx, review)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockReviewRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	return m.FindByMovieIDFn(ctx, movieID, limit, offset)
}

func (m *mockReviewRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	return m.FindByUserAndMovieFn(ctx, userID, movieID)
}

func (m *mockReviewRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	return m.FindAllFn(ctx, limit, offset)
}

func (m *mockReviewRepo) CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error) {
	return m.CountByMovieIDFn(ctx, movieID)
}

func (m *mockReviewRepo) CountAll(ctx context.Context) (int64, error) {
	return m.CountAllFn(ctx)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return m.UpdateFn(ctx, review)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockReviewRepo) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	return m.DeleteByMovieIDFn(ctx, movieID)
}

type mockFavoriteRepo struct {
	CreateFn             func(ctx context.Context, favorite *entity.Favorite) error
	FindFn               func(ctx context.Context, userID, movieID uuid.UUID) (*entity.Favorite, error)
	FindMoviesByUserIDFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Movie, error)
	CountByUserIDFn      func(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteFn             func(ctx context.Context, userID, movieID uuid.UUID) error
	DeleteByMovieIDFn    func(ctx context.Context, movieID uuid.UUID) error
}

func (m *mockFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	return m.CreateFn(ctx, favorite)
}

func (m *mockFavoriteRepo) Find(ctx context.Context, userID, movieID uuid.UUID) (*entity.Favorite, error) {
	return m.FindFn(ctx, userID, movieID)
}

func (m *mockFavoriteRepo) FindMoviesByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Movie, error) {
	return m.FindMoviesByUserIDFn(ctx, userID, limit, offset)
}

func (m *mockFavoriteRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.CountByUserIDFn(ctx, userID)
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	return m.DeleteFn(ctx, userID, movieID)
}

func (m *mockFavoriteRepo) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	return m.DeleteByMovieIDFn(ctx, movieID)
}

func newMockRepository(user *mockUserRepo, movie *mockMovieRepo, review *mockReviewRepo, favorite *mockFavoriteRepo) *repository.Repository {
	if user == nil {
		user = &mockUserRepo{}
	}
	if movie == nil {
		movie = &mockMovieRepo{}
	}
	if review == nil {
		review = &mockReviewRepo{}
	}
	if favorite == nil {
		favorite = &mockFavoriteRepo{}
	}
	return &repository.Repository{
		User:     user,
		Movie:    movie,
		Review:   review,
		Favorite: favorite,
	}
}
