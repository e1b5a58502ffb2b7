package request

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	ReleaseYear *int    `json:"release_year,omitempty" validate:"omitempty,gte=1878,lte=2100"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	IMDbID      *string `json:"imdb_id,omitempty" validate:"omitempty,max=30"`
}

type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	ReleaseYear *int    `json:"release_year,omitempty" validate:"omitempty,gte=1878,lte=2100"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	IMDbID      *string `json:"imdb_id,omitempty" validate:"omitempty,max=30"`
}

type ImportMovieRequest struct {
	IMDbID string `json:"imdb_id" validate:"required,max=30"`
}
