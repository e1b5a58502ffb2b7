package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering of a movie listing.
type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByYear   SortKey = "year"
	SortByRating SortKey = "rating"
)

// ParseSortKey maps the ?by= value. Anything unknown sorts by title.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByRating:
		return SortByRating
	case SortByYear:
		return SortByYear
	default:
		return SortByTitle
	}
}

// SortByAverage orders entries by average rating, highest first. Ties keep
// the order the entries were retrieved in.
func SortByAverage(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AverageRating > entries[j].AverageRating
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns a user query into a substring pattern for ILIKE ... ESCAPE '\'.
// The second result is false when q is blank and no filtering should happen.
func LikePattern(q string) (string, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", false
	}
	return "%" + likeEscaper.Replace(q) + "%", true
}
