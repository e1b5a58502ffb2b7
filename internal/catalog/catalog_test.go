package catalog

import (
	"math"
	"testing"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovie(title string) *entity.Movie {
	return &entity.Movie{Base: entity.Base{ID: uuid.New()}, Title: title}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "no reviews", ratings: nil, want: 0},
		{name: "empty slice", ratings: []int{}, want: 0},
		{name: "single", ratings: []int{4}, want: 4},
		{name: "exact mean", ratings: []int{5, 3, 4}, want: 4},
		{name: "fractional mean is not rounded", ratings: []int{5, 4}, want: 4.5},
		{name: "thirds", ratings: []int{1, 1, 2}, want: 4.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageRating(tt.ratings), 1e-9)
		})
	}
}

func TestSummarizeAll_MoviesWithoutReviewsAverageZero(t *testing.T) {
	reviewed := newMovie("Heat")
	unreviewed := newMovie("Ronin")

	entries := SummarizeAll([]*entity.Movie{reviewed, unreviewed}, map[uuid.UUID][]int{
		reviewed.ID: {2, 3},
	})

	require.Len(t, entries, 2)
	assert.Same(t, reviewed, entries[0].Movie)
	assert.InDelta(t, 2.5, entries[0].AverageRating, 1e-9)
	assert.Equal(t, 2, entries[0].ReviewCount)
	assert.Same(t, unreviewed, entries[1].Movie)
	assert.Equal(t, float64(0), entries[1].AverageRating)
	assert.Equal(t, 0, entries[1].ReviewCount)
}

func TestSortByAverage_DescendingAndStable(t *testing.T) {
	a, b, c, d := newMovie("A"), newMovie("B"), newMovie("C"), newMovie("D")
	entries := SummarizeAll([]*entity.Movie{a, b, c, d}, map[uuid.UUID][]int{
		a.ID: {3},
		b.ID: {5},
		c.ID: {3},
	})

	SortByAverage(entries)

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Movie.Title
	}
	// A and C tie at 3 and keep their retrieval order
	assert.Equal(t, []string{"B", "A", "C", "D"}, got)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].AverageRating, entries[i].AverageRating)
	}
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByRating, ParseSortKey("rating"))
	assert.Equal(t, SortByRating, ParseSortKey(" Rating "))
	assert.Equal(t, SortByYear, ParseSortKey("year"))
	assert.Equal(t, SortByTitle, ParseSortKey("title"))
	assert.Equal(t, SortByTitle, ParseSortKey(""))
	assert.Equal(t, SortByTitle, ParseSortKey("popularity"))
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		filters bool
	}{
		{in: "", want: "", filters: false},
		{in: "   ", want: "", filters: false},
		{in: "Matrix", want: "%Matrix%", filters: true},
		{in: " matrix ", want: "%matrix%", filters: true},
		{in: "100%", want: `%100\%%`, filters: true},
		{in: "a_b", want: `%a\_b%`, filters: true},
		{in: `c:\x`, want: `%c:\\x%`, filters: true},
	}

	for _, tt := range tests {
		got, ok := LikePattern(tt.in)
		assert.Equal(t, tt.filters, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNewWindow(t *testing.T) {
	w := NewWindow(3, 2)
	assert.Equal(t, Window{Page: 3, PerPage: 2, Offset: 4, Limit: 2}, w)

	assert.Equal(t, DefaultPerPage, NewWindow(1, 0).PerPage)
	assert.Equal(t, MaxPerPage, NewWindow(1, 1000).PerPage)
	assert.Equal(t, 0, NewWindow(-4, 10).Offset)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, NewWindow(1, 2)))
	assert.Equal(t, []int{5}, Paginate(items, NewWindow(3, 2)))

	past := Paginate(items, NewWindow(10, 2))
	require.NotNil(t, past)
	assert.Empty(t, past)

	assert.Empty(t, Paginate(items, Window{Offset: -3, Limit: 2}))
	assert.Empty(t, Paginate(items, Window{Offset: 1, Limit: 0}))
	assert.Equal(t, []int{4, 5}, Paginate(items, Window{Offset: 3, Limit: math.MaxInt}))
}

func TestNewWindow_OffsetSaturates(t *testing.T) {
	w := NewWindow(math.MaxInt/4+1, 5)
	assert.Equal(t, math.MaxInt, w.Offset)
	assert.Equal(t, 5, w.Limit)
	assert.Empty(t, Paginate([]int{1, 2, 3, 4, 5}, w))

	w = NewWindow(math.MaxInt, MaxPerPage)
	assert.Equal(t, math.MaxInt, w.Offset)

	// largest page that still fits
	last := math.MaxInt/5 + 1
	assert.Equal(t, (last-1)*5, NewWindow(last, 5).Offset)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(5, 2))
	assert.Equal(t, 1, TotalPages(2, 2))
	assert.Equal(t, 0, TotalPages(0, 2))
	assert.Equal(t, 0, TotalPages(5, 0))
}
