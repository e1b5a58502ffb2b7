package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

// ActivityRepository is append-only: entries are never updated or deleted.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Action,
		activity.Details,
		activity.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("action", string(activity.Action)),
		)
		return fmt.Errorf("create activity %s: %w", activity.Action, classify(err))
	}

	return nil
}

// FindRecent returns the newest entries first.
func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, user_id, action, details, created_at
		FROM activities
		ORDER BY created_at DESC, id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find recent activities",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find recent activities: %w", err)
	}
	defer rows.Close()

	activities := make([]*entity.Activity, 0, limit)
	for rows.Next() {
		var activity entity.Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.Action,
			&activity.Details,
			&activity.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}

	return activities, nil
}
