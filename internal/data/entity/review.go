package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	MovieID uuid.UUID `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
	Rating  int       `db:"rating"` // 1-5
	Comment *string   `db:"comment"`
}

// ReviewWithAuthor is a review joined with the reviewer's username.
type ReviewWithAuthor struct {
	Review
	Username string `db:"username"`
}
