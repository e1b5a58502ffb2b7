package catalog

import "math"

const (
	DefaultPerPage = 5
	MaxPerPage     = 100
)

// Window is the LIMIT/OFFSET pair for a 1-indexed page.
type Window struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// NewWindow clamps perPage into [1, MaxPerPage], using DefaultPerPage when it
// is not positive. page is expected to be >= 1; smaller values are treated as 1.
// An offset that would overflow saturates at math.MaxInt, past any data.
func NewWindow(page, perPage int) Window {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page < 1 {
		page = 1
	}
	offset := math.MaxInt
	if page-1 <= math.MaxInt/perPage {
		offset = (page - 1) * perPage
	}
	return Window{
		Page:    page,
		PerPage: perPage,
		Offset:  offset,
		Limit:   perPage,
	}
}

// TotalPages is ceil(total/perPage).
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Paginate slices items for w. Pages past the end are empty, never an error.
func Paginate[T any](items []T, w Window) []T {
	if w.Offset < 0 || w.Offset >= len(items) || w.Limit < 1 {
		return []T{}
	}
	end := len(items)
	if w.Limit < end-w.Offset {
		end = w.Offset + w.Limit
	}
	return items[w.Offset:end]
}
