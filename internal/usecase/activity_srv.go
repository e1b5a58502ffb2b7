package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

type ActivityService interface {
	// Record appends an entry. Failures are logged, never returned.
	Record(ctx context.Context, userID *uuid.UUID, action entity.ActivityAction, details string)
	ListRecent(ctx context.Context, limit int) ([]response.ActivityResponse, error)
}

type activityService struct {
	repo repository.ActivityRepository
	log  *zap.Logger
}

func NewActivityService(repo repository.ActivityRepository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) Record(ctx context.Context, userID *uuid.UUID, action entity.ActivityAction, details string) {
	activity := &entity.Activity{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		Action:  action,
		Details: details,
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		s.log.Warn("Failed to record activity",
			zap.Error(err),
			zap.String("action", string(action)),
		)
	}
}

func (s *activityService) ListRecent(ctx context.Context, limit int) ([]response.ActivityResponse, error) {
	if limit < 1 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	activities, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return response.ActivitiesToResponse(activities), nil
}
