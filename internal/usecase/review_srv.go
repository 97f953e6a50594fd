package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, userID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, userID, reviewID string, isAdmin bool) error
	ListMovieReviews(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetMovieStats(ctx context.Context, movieID string) (*response.MovieReviewStats, error)
}

type reviewService struct {
	store *store.Store
	log   *zap.Logger
}

func NewReviewService(st *store.Store, log *zap.Logger) ReviewService {
	return &reviewService{
		store: st,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %s", entity.ErrValidation, req.MovieID)
	}
	movie, err := s.store.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("%w: movie %s", entity.ErrNotFound, req.MovieID)
	}

	review, err := entity.NewReview(uid, movie.ID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}
	if err := s.store.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.refreshMovieRating(ctx, movie)
	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movie.ID.String()),
		zap.Float64("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	review, err := s.findOwnedReview(ctx, userID, reviewID, false)
	if err != nil {
		return nil, err
	}
	if err := review.Update(req.Rating, req.Comment); err != nil {
		return nil, err
	}

	if movie, err := s.store.Movie.FindByID(ctx, review.MovieID); err == nil && movie != nil {
		s.refreshMovieRating(ctx, movie)
	}
	s.log.Info("Review updated", zap.String("review_id", review.ID.String()))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID string, isAdmin bool) error {
	review, err := s.findOwnedReview(ctx, userID, reviewID, isAdmin)
	if err != nil {
		return err
	}
	if err := s.store.Review.Delete(ctx, review.ID); err != nil {
		return err
	}

	if movie, err := s.store.Movie.FindByID(ctx, review.MovieID); err == nil && movie != nil {
		s.refreshMovieRating(ctx, movie)
	}
	s.log.Info("Review deleted", zap.String("review_id", review.ID.String()))
	return nil
}

func (s *reviewService) ListMovieReviews(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %s", entity.ErrValidation, movieID)
	}

	reviews, total, err := s.store.Review.FindByMovie(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	responses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToResponse(review)
	}
	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *reviewService) GetMovieStats(ctx context.Context, movieID string) (*response.MovieReviewStats, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %s", entity.ErrValidation, movieID)
	}
	movie, err := s.store.Movie.FindByID(ctx, id)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("%w: movie %s", entity.ErrNotFound, movieID)
	}

	count, avg, err := s.movieRating(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	return &response.MovieReviewStats{
		MovieID:       movie.ID.String(),
		ReviewCount:   count,
		AverageRating: avg,
	}, nil
}

// movieRating computes the running mean over all stored reviews for a movie.
func (s *reviewService) movieRating(ctx context.Context, movieID uuid.UUID) (int64, float64, error) {
	reviews, total, err := s.store.Review.FindByMovie(ctx, movieID, -1, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("load reviews: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}
	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}
	return total, sum / float64(len(reviews)), nil
}

// refreshMovieRating keeps the catalog's denormalized rating in step with
// the review store. Failures are logged, not surfaced; the review itself
// already persisted.
func (s *reviewService) refreshMovieRating(ctx context.Context, movie *entity.Movie) {
	_, avg, err := s.movieRating(ctx, movie.ID)
	if err != nil {
		s.log.Warn("Failed to refresh movie rating", zap.String("movie_id", movie.ID.String()), zap.Error(err))
		return
	}
	movie.Rating = avg
}

func (s *reviewService) findOwnedReview(ctx context.Context, userID, reviewID string, isAdmin bool) (*entity.Review, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid review ID %s", entity.ErrValidation, reviewID)
	}
	review, err := s.store.Review.FindByID(ctx, id)
	if err != nil || review == nil {
		return nil, fmt.Errorf("%w: review %s", entity.ErrNotFound, reviewID)
	}
	if !isAdmin && review.UserID.String() != userID {
		return nil, fmt.Errorf("%w: review belongs to another user", entity.ErrUnauthorized)
	}
	return review, nil
}
