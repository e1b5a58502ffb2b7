package entity

type Movie struct {
	Base
	Title       string  `db:"title"`
	ReleaseYear *int    `db:"release_year"`
	Genre       *string `db:"genre"`
	Description *string `db:"description"`
	IMDbID      *string `db:"imdb_id"`
}
