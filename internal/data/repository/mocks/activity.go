package mocks

import (
	"context"

	"movie-catalog/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

// ActivityRepository is a testify mock of repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *ActivityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	args := m.Called(ctx, limit)
	activities, _ := args.Get(0).([]*entity.Activity)
	return activities, args.Error(1)
}
