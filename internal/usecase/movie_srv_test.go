package usecase

import (
	"context"
	"testing"
	"time"

	"movieverse/internal/data/entity"
	"movieverse/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieService(movie *mockMovieRepo, review *mockReviewRepo, favorite *mockFavoriteRepo, user *mockUserRepo) MovieService {
	repo := newMockRepository(user, movie, review, favorite)
	return NewMovieService(repo, zap.NewNop())
}

func sampleMovie(id uuid.UUID, title string) *entity.Movie {
	return &entity.Movie{
		Base: entity.Base{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       title,
		Description: "A movie about things happening.",
		Genres:      []string{"Drama", "Thriller"},
		ReleaseDate: time.Date(2019, 5, 30, 0, 0, 0, 0, time.UTC),
		Rating:      7.5,
	}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestMovieService_GetMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("paginates with defaults", func(t *testing.T) {
		var gotLimit, gotOffset int
		movie := &mockMovieRepo{
			FindAllFn: func(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
				gotLimit, gotOffset = limit, offset
				return []*entity.Movie{sampleMovie(uuid.New(), "Inception")}, nil
			},
			CountAllFn: func(ctx context.Context) (int64, error) { return 25, nil },
		}

		svc := newMovieService(movie, nil, nil, nil)
		resp, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: 2, PerPage: 10})
		require.NoError(t, err)

		assert.Equal(t, 10, gotLimit)
		assert.Equal(t, 10, gotOffset)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, int64(25), resp.Pagination.Total)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.Equal(t, "Inception", resp.Data[0].Title)
		assert.Equal(t, "2019-05-30", resp.Data[0].ReleaseDate)
	})

	t.Run("caps per_page at 100", func(t *testing.T) {
		var gotLimit int
		movie := &mockMovieRepo{
			FindAllFn: func(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
				gotLimit = limit
				return nil, nil
			},
			CountAllFn: func(ctx context.Context) (int64, error) { return 0, nil },
		}

		svc := newMovieService(movie, nil, nil, nil)
		_, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: 1, PerPage: 5000})
		require.NoError(t, err)
		assert.Equal(t, 100, gotLimit)
	})
}

func TestMovieService_GetMovieByID(t *testing.T) {
	ctx := context.Background()
	movieID := uuid.New()
	authorID := uuid.New()

	t.Run("detail view carries reviews with usernames", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return sampleMovie(movieID, "Inception"), nil
			},
		}
		review := &mockReviewRepo{
			FindByMovieIDFn: func(ctx context.Context, mid uuid.UUID, limit, offset int) ([]*entity.Review, error) {
				return []*entity.Review{{
					Base:       entity.Base{ID: uuid.New()},
					MovieID:    movieID,
					UserID:     authorID,
					ReviewText: "Loved it",
					Rating:     9,
				}}, nil
			},
		}
		user := &mockUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{Base: entity.Base{ID: authorID}, Username: "moviefan"}, nil
			},
		}

		svc := newMovieService(movie, review, nil, user)
		resp, err := svc.GetMovieByID(ctx, movieID.String())
		require.NoError(t, err)
		assert.Equal(t, "Inception", resp.Movie.Title)
		require.Len(t, resp.Reviews, 1)
		assert.Equal(t, "moviefan", resp.Reviews[0].Username)
	})

	t.Run("missing movie", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return nil, nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		_, err := svc.GetMovieByID(ctx, uuid.New().String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "movie not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := newMovieService(&mockMovieRepo{}, nil, nil, nil)
		_, err := svc.GetMovieByID(ctx, "not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid movie id")
	})
}

func TestMovieService_CreateMovie(t *testing.T) {
	ctx := context.Background()

	validReq := func() *request.MovieRequest {
		return &request.MovieRequest{
			Title:       "Inception",
			Description: "Dreams within dreams.",
			Genres:      []string{"Sci-Fi", "Thriller"},
			ReleaseDate: "2010-07-16",
			Rating:      floatPtr(8.8),
		}
	}

	t.Run("success", func(t *testing.T) {
		var created *entity.Movie
		movie := &mockMovieRepo{
			FindByTitleFn: func(ctx context.Context, title string) (*entity.Movie, error) {
				return nil, nil
			},
			CreateFn: func(ctx context.Context, m *entity.Movie) error {
				created = m
				return nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		resp, err := svc.CreateMovie(ctx, validReq())
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "Inception", resp.Title)
		assert.Equal(t, 8.8, resp.Rating)
		assert.Equal(t, "2010-07-16", resp.ReleaseDate)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})

	t.Run("rating defaults to zero when omitted", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByTitleFn: func(ctx context.Context, title string) (*entity.Movie, error) {
				return nil, nil
			},
			CreateFn: func(ctx context.Context, m *entity.Movie) error { return nil },
		}

		req := validReq()
		req.Rating = nil

		svc := newMovieService(movie, nil, nil, nil)
		resp, err := svc.CreateMovie(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.Rating)
	})

	t.Run("rejects unknown genre", func(t *testing.T) {
		req := validReq()
		req.Genres = []string{"Sci-Fi", "Cooking"}

		svc := newMovieService(&mockMovieRepo{}, nil, nil, nil)
		_, err := svc.CreateMovie(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid genre selection")
		assert.Contains(t, err.Error(), "Cooking")
	})

	t.Run("duplicate title", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByTitleFn: func(ctx context.Context, title string) (*entity.Movie, error) {
				return sampleMovie(uuid.New(), title), nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		_, err := svc.CreateMovie(ctx, validReq())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "movie title already exists")
	})

	t.Run("validation rejects missing fields", func(t *testing.T) {
		tests := []struct {
			name string
			mut  func(*request.MovieRequest)
		}{
			{"no title", func(r *request.MovieRequest) { r.Title = "" }},
			{"no description", func(r *request.MovieRequest) { r.Description = "" }},
			{"no genres", func(r *request.MovieRequest) { r.Genres = nil }},
			{"bad date", func(r *request.MovieRequest) { r.ReleaseDate = "16-07-2010" }},
			{"rating too high", func(r *request.MovieRequest) { r.Rating = floatPtr(11) }},
		}

		svc := newMovieService(&mockMovieRepo{}, nil, nil, nil)
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validReq()
				tt.mut(req)
				_, err := svc.CreateMovie(ctx, req)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
			})
		}
	})
}

func TestMovieService_UpdateMovie(t *testing.T) {
	ctx := context.Background()
	movieID := uuid.New()

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		stored := sampleMovie(movieID, "Inception")
		var updated *entity.Movie

		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return stored, nil
			},
			UpdateFn: func(ctx context.Context, m *entity.Movie) error {
				updated = m
				return nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		resp, err := svc.UpdateMovie(ctx, movieID.String(), &request.MovieUpdateRequest{
			Rating: floatPtr(9.1),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, 9.1, resp.Rating)
		assert.Equal(t, "Inception", resp.Title)
		assert.Equal(t, []string{"Drama", "Thriller"}, resp.Genres)
	})

	t.Run("empty patch skips the write", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return sampleMovie(movieID, "Inception"), nil
			},
			UpdateFn: func(ctx context.Context, m *entity.Movie) error {
				t.Fatal("update should not be called for an empty patch")
				return nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		resp, err := svc.UpdateMovie(ctx, movieID.String(), &request.MovieUpdateRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Inception", resp.Title)
	})

	t.Run("title change collides with another movie", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return sampleMovie(movieID, "Inception"), nil
			},
			FindByTitleFn: func(ctx context.Context, title string) (*entity.Movie, error) {
				return sampleMovie(uuid.New(), title), nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		_, err := svc.UpdateMovie(ctx, movieID.String(), &request.MovieUpdateRequest{
			Title: strPtr("Interstellar"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "movie title already exists")
	})

	t.Run("missing movie", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return nil, nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		_, err := svc.UpdateMovie(ctx, uuid.New().String(), &request.MovieUpdateRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "movie not found")
	})

	t.Run("rejects unknown genre in patch", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return sampleMovie(movieID, "Inception"), nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		_, err := svc.UpdateMovie(ctx, movieID.String(), &request.MovieUpdateRequest{
			Genres: []string{"Knitting"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid genre selection")
	})
}

func TestMovieService_DeleteMovie(t *testing.T) {
	ctx := context.Background()
	movieID := uuid.New()

	t.Run("cascades to reviews and favorites", func(t *testing.T) {
		var reviewsDeleted, favoritesDeleted, movieDeleted bool

		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return sampleMovie(movieID, "Inception"), nil
			},
			DeleteFn: func(ctx context.Context, id uuid.UUID) error {
				// Dependents must be gone before the movie row.
				assert.True(t, reviewsDeleted)
				assert.True(t, favoritesDeleted)
				movieDeleted = true
				return nil
			},
		}
		review := &mockReviewRepo{
			DeleteByMovieIDFn: func(ctx context.Context, id uuid.UUID) error {
				reviewsDeleted = true
				return nil
			},
		}
		favorite := &mockFavoriteRepo{
			DeleteByMovieIDFn: func(ctx context.Context, id uuid.UUID) error {
				favoritesDeleted = true
				return nil
			},
		}

		svc := newMovieService(movie, review, favorite, nil)
		err := svc.DeleteMovie(ctx, movieID.String())
		require.NoError(t, err)
		assert.True(t, movieDeleted)
	})

	t.Run("missing movie", func(t *testing.T) {
		movie := &mockMovieRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
				return nil, nil
			},
		}

		svc := newMovieService(movie, nil, nil, nil)
		err := svc.DeleteMovie(ctx, uuid.New().String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "movie not found")
	})
}
