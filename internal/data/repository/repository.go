package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Movie    MovieRepository
	Review   ReviewRepository
	Activity ActivityRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Activity: NewActivityRepository(db, log),
	}
}
