// Package catalog holds the read-side rules of the movie catalog: rating
// aggregation, result ordering, title search patterns and page windows.
// Everything here is pure; callers load data and hand it in.
package catalog

import (
	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
)

// AverageRating is the arithmetic mean of ratings, or 0 when there are none.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// Entry is a movie with its aggregates computed at read time.
type Entry struct {
	Movie         *entity.Movie
	AverageRating float64
	ReviewCount   int
}

// Summarize computes the aggregates of one movie from its current ratings.
func Summarize(movie *entity.Movie, ratings []int) Entry {
	return Entry{
		Movie:         movie,
		AverageRating: AverageRating(ratings),
		ReviewCount:   len(ratings),
	}
}

// SummarizeAll keeps the order of movies. Movies missing from ratings have no reviews.
func SummarizeAll(movies []*entity.Movie, ratings map[uuid.UUID][]int) []Entry {
	entries := make([]Entry, len(movies))
	for i, m := range movies {
		entries[i] = Summarize(m, ratings[m.ID])
	}
	return entries
}
