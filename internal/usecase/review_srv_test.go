package usecase

import (
	"context"
	"testing"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReviewFixture(t *testing.T) (*store.Store, ReviewService, *entity.User, *entity.Movie) {
	t.Helper()
	ctx := context.Background()
	st := store.NewStore(zap.NewNop())

	contact, err := entity.NewContact("Jordan Lee", "jordan@example.com", "081234567890")
	require.NoError(t, err)
	user, err := entity.NewUser(contact, "jordanlee", "hashed-password", entity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, st.User.Create(ctx, user))

	movie, err := entity.NewMovie("Orbit", "", []string{"Sci-Fi"}, 143)
	require.NoError(t, err)
	require.NoError(t, st.Movie.Create(ctx, movie))

	return st, NewReviewService(st, zap.NewNop()), user, movie
}

func TestCreateReview(t *testing.T) {
	_, service, user, movie := newReviewFixture(t)
	ctx := context.Background()

	review, err := service.CreateReview(ctx, user.ID.String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  4,
		Comment: "solid",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, review.Rating)

	// The catalog's denormalized rating follows the review store.
	assert.Equal(t, 4.0, movie.Rating)

	// One review per user per movie.
	_, err = service.CreateReview(ctx, user.ID.String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  2,
	})
	assert.ErrorIs(t, err, entity.ErrDuplicate)
}

func TestReviewStats(t *testing.T) {
	st, service, user, movie := newReviewFixture(t)
	ctx := context.Background()

	_, err := service.CreateReview(ctx, user.ID.String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  5,
	})
	require.NoError(t, err)

	contact, err := entity.NewContact("Sam Reyes", "sam@example.com", "081234567891")
	require.NoError(t, err)
	other, err := entity.NewUser(contact, "samreyes", "hashed-password", entity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, st.User.Create(ctx, other))

	_, err = service.CreateReview(ctx, other.ID.String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  2,
	})
	require.NoError(t, err)

	stats, err := service.GetMovieStats(ctx, movie.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.ReviewCount)
	assert.Equal(t, 3.5, stats.AverageRating)

	page, err := service.ListMovieReviews(ctx, movie.ID.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
}

func TestUpdateReviewOwnership(t *testing.T) {
	st, service, user, movie := newReviewFixture(t)
	ctx := context.Background()

	created, err := service.CreateReview(ctx, user.ID.String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  4,
	})
	require.NoError(t, err)

	contact, err := entity.NewContact("Sam Reyes", "sam@example.com", "081234567891")
	require.NoError(t, err)
	other, err := entity.NewUser(contact, "samreyes", "hashed-password", entity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, st.User.Create(ctx, other))

	_, err = service.UpdateReview(ctx, other.ID.String(), created.ID, &request.UpdateReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	updated, err := service.UpdateReview(ctx, user.ID.String(), created.ID, &request.UpdateReviewRequest{Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.Rating)
	assert.Equal(t, 3.0, movie.Rating)
}

func TestDeleteReview(t *testing.T) {
	st, service, user, movie := newReviewFixture(t)
	ctx := context.Background()

	created, err := service.CreateReview(ctx, user.ID.String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  4,
	})
	require.NoError(t, err)

	contact, err := entity.NewContact("Sam Reyes", "sam@example.com", "081234567891")
	require.NoError(t, err)
	other, err := entity.NewUser(contact, "samreyes", "hashed-password", entity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, st.User.Create(ctx, other))

	err = service.DeleteReview(ctx, other.ID.String(), created.ID, false)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	// Admin override.
	require.NoError(t, service.DeleteReview(ctx, other.ID.String(), created.ID, true))
	assert.Equal(t, 0.0, movie.Rating)

	err = service.DeleteReview(ctx, user.ID.String(), created.ID, false)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
