package request

import "movie-catalog/internal/catalog"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Window resolves the request into a LIMIT/OFFSET pair, defaulting per_page.
func (p PaginatedRequest) Window() catalog.Window {
	return catalog.NewWindow(p.Page, p.PerPage)
}

func (p PaginatedRequest) Offset() int {
	return p.Window().Offset
}

func (p PaginatedRequest) Limit() int {
	return p.Window().Limit
}
