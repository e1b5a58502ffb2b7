package response

import (
	"time"

	"movie-catalog/internal/catalog"
)

type MovieResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ReleaseYear   *int      `json:"release_year"`
	Genre         *string   `json:"genre"`
	Description   *string   `json:"description"`
	IMDbID        *string   `json:"imdb_id"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int       `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Helper converters
func MovieToResponse(entry catalog.Entry) MovieResponse {
	movie := entry.Movie
	return MovieResponse{
		ID:            movie.ID.String(),
		Title:         movie.Title,
		ReleaseYear:   movie.ReleaseYear,
		Genre:         movie.Genre,
		Description:   movie.Description,
		IMDbID:        movie.IMDbID,
		AverageRating: entry.AverageRating,
		ReviewCount:   entry.ReviewCount,
		CreatedAt:     movie.CreatedAt,
		UpdatedAt:     movie.UpdatedAt,
	}
}

func MoviesToResponse(entries []catalog.Entry) []MovieResponse {
	result := make([]MovieResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, MovieToResponse(entry))
	}
	return result
}
