package entity

import (
	"github.com/google/uuid"
)

type ActivityAction string

const (
	ActionSignup      ActivityAction = "signup"
	ActionLogin       ActivityAction = "login"
	ActionLogout      ActivityAction = "logout"
	ActionMovieCreate ActivityAction = "movie_create"
	ActionMovieImport ActivityAction = "movie_import"
	ActionMovieDelete ActivityAction = "movie_delete"
)

// Activity is an append-only audit entry. UserID is nil once the user is gone.
type Activity struct {
	BaseSimple
	UserID  *uuid.UUID     `db:"user_id"`
	Action  ActivityAction `db:"action"`
	Details string         `db:"details"`
}
