package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Review   ReviewService
	Activity ActivityService
	Metadata MetadataService
}

func NewService(repo *repository.Repository, metadata MetadataProvider, config *utils.Config, log *zap.Logger) *Service {
	activity := NewActivityService(repo.Activity, log)

	return &Service{
		Auth:     NewAuthService(repo, activity, config, log),
		User:     NewUserService(repo, log),
		Movie:    NewMovieService(repo, metadata, activity, log),
		Review:   NewReviewService(repo, log),
		Activity: activity,
		Metadata: NewMetadataService(metadata, log),
	}
}
