package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
}

type userService struct {
	repo *repository.Repository // user and review
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}

	reviewCount, err := us.repo.Review.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count reviews of user %s: %w", userID, err)
	}

	return &response.ProfileResponse{
		UserResponse: response.UserToResponse(user),
		ReviewCount:  reviewCount,
	}, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	window := req.Window()

	users, err := us.repo.User.FindAll(ctx, window.Limit, window.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	us.log.Debug("Users listed",
		zap.Int("page", window.Page),
		zap.Int("count", len(users)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(response.UsersToResponse(users), window.Page, window.PerPage, total), nil
}
