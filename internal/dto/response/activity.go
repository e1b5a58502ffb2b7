package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type ActivityResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

func ActivitiesToResponse(activities []*entity.Activity) []ActivityResponse {
	result := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		resp := ActivityResponse{
			ID:        activity.ID.String(),
			Action:    string(activity.Action),
			Details:   activity.Details,
			CreatedAt: activity.CreatedAt,
		}
		if activity.UserID != nil {
			userID := activity.UserID.String()
			resp.UserID = &userID
		}
		result = append(result, resp)
	}
	return result
}
