package repository

import (
	"testing"

	"movie-catalog/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestBuildMovieListQuery(t *testing.T) {
	year := 1999

	tests := []struct {
		name     string
		filter   MovieFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filter sorts by title",
			filter:   MovieFilter{},
			wantSQL:  "SELECT " + movieColumns + " FROM movies ORDER BY title ASC, created_at ASC, id ASC",
			wantArgs: []any{},
		},
		{
			name:     "blank query does not filter",
			filter:   MovieFilter{Query: "   ", Sort: catalog.SortByYear},
			wantSQL:  "SELECT " + movieColumns + " FROM movies ORDER BY release_year DESC NULLS LAST, created_at ASC, id ASC",
			wantArgs: []any{},
		},
		{
			name:   "search and year combine",
			filter: MovieFilter{Query: "matrix", Year: &year},
			wantSQL: "SELECT " + movieColumns + ` FROM movies WHERE title ILIKE $1 ESCAPE '\' AND release_year = $2` +
				" ORDER BY title ASC, created_at ASC, id ASC",
			wantArgs: []any{"%matrix%", 1999},
		},
		{
			name:   "window follows filter args",
			filter: MovieFilter{Year: &year, Sort: catalog.SortByRating, Limit: 5, Offset: 10},
			wantSQL: "SELECT " + movieColumns + " FROM movies WHERE release_year = $1" +
				" ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3",
			wantArgs: []any{1999, 5, 10},
		},
		{
			name:     "first page has no offset",
			filter:   MovieFilter{Limit: 5},
			wantSQL:  "SELECT " + movieColumns + " FROM movies ORDER BY title ASC, created_at ASC, id ASC LIMIT $1",
			wantArgs: []any{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildMovieListQuery(tt.filter)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildMovieCountQuery_IgnoresWindowAndSort(t *testing.T) {
	sql, args := buildMovieCountQuery(MovieFilter{Query: "50%", Sort: catalog.SortByYear, Limit: 5, Offset: 5})

	assert.Equal(t, `SELECT COUNT(*) FROM movies WHERE title ILIKE $1 ESCAPE '\'`, sql)
	assert.Equal(t, []any{`%50\%%`}, args)
}
