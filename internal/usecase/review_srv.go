package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor is the caller a mutation is performed for.
type Actor struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

// CanModify reports whether the actor may change something owned by ownerID.
func (a Actor) CanModify(ownerID uuid.UUID) bool {
	return a.Role == entity.RoleAdmin || a.UserID == ownerID
}

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	UpdateReview(ctx context.Context, actor Actor, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, actor Actor, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository // movie and review
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
		now:  time.Now,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	req.Comment = utils.TrimmedPtr(req.Comment)
	if err := validate(req); err != nil {
		return nil, err
	}

	// Movie must exist
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie %q: %w", movieID, ErrNotFound)
	}
	if _, err := s.repo.Movie.FindByID(ctx, movieUUID); err != nil {
		return nil, notFoundOr(err, "movie "+movieID)
	}

	// Create review entity
	now := s.now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID: movieUUID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		// The movie can vanish between the check and the insert
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()),
		zap.Int("rating", review.Rating),
	)

	return s.reload(ctx, review.ID)
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie %q: %w", movieID, ErrNotFound)
	}
	if _, err := s.repo.Movie.FindByID(ctx, movieUUID); err != nil {
		return nil, notFoundOr(err, "movie "+movieID)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("list reviews of movie %s: %w", movieID, err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, actor Actor, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.findOwned(ctx, actor, reviewID)
	if err != nil {
		return nil, err
	}

	review := existing.Review
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = utils.TrimmedPtr(req.Comment)
	}
	review.UpdatedAt = s.now()

	if err := s.repo.Review.Update(ctx, &review); err != nil {
		return nil, notFoundOr(err, "review "+reviewID)
	}

	s.log.Info("Review updated",
		zap.String("review_id", review.ID.String()),
		zap.String("actor_id", actor.UserID.String()),
	)

	existing.Review = review
	resp := response.ReviewToResponse(existing)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actor Actor, reviewID string) error {
	existing, err := s.findOwned(ctx, actor, reviewID)
	if err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, existing.ID); err != nil {
		return notFoundOr(err, "review "+reviewID)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", existing.ID.String()),
		zap.String("actor_id", actor.UserID.String()),
	)

	return nil
}

// findOwned loads a review and checks the actor may modify it.
func (s *reviewService) findOwned(ctx context.Context, actor Actor, reviewID string) (*entity.ReviewWithAuthor, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("review %q: %w", reviewID, ErrNotFound)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "review "+reviewID)
	}

	if !actor.CanModify(review.UserID) {
		s.log.Warn("Review modification by non-owner",
			zap.String("review_id", reviewID),
			zap.String("actor_id", actor.UserID.String()),
		)
		return nil, fmt.Errorf("review %s belongs to another user: %w", reviewID, ErrForbidden)
	}

	return review, nil
}

func (s *reviewService) reload(ctx context.Context, id uuid.UUID) (*response.ReviewResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "review "+id.String())
	}
	resp := response.ReviewToResponse(review)
	return &resp, nil
}
