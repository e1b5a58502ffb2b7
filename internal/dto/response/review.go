package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converters
func ReviewToResponse(review *entity.ReviewWithAuthor) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		MovieID:   review.MovieID.String(),
		UserID:    review.UserID.String(),
		Username:  review.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.ReviewWithAuthor) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, ReviewToResponse(review))
	}
	return result
}
