package mocks

import (
	"context"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ReviewRepository is a testify mock of repository.ReviewRepository.
type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithAuthor, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*entity.ReviewWithAuthor)
	return review, args.Error(1)
}

func (m *ReviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	args := m.Called(ctx, movieID)
	reviews, _ := args.Get(0).([]*entity.ReviewWithAuthor)
	return reviews, args.Error(1)
}

func (m *ReviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReviewRepository) RatingsByMovieIDs(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	args := m.Called(ctx, movieIDs)
	ratings, _ := args.Get(0).(map[uuid.UUID][]int)
	return ratings, args.Error(1)
}
