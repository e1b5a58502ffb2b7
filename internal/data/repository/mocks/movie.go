package mocks

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MovieRepository is a testify mock of repository.MovieRepository.
type MovieRepository struct {
	mock.Mock
}

func (m *MovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *MovieRepository) FindByIMDbID(ctx context.Context, imdbID string) (*entity.Movie, error) {
	args := m.Called(ctx, imdbID)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *MovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MovieRepository) List(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
	args := m.Called(ctx, filter)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

func (m *MovieRepository) Count(ctx context.Context, filter repository.MovieFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
