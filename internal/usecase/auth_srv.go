package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionMeta describes the client a session is issued to.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

// Principal is the authenticated caller behind a bearer token.
type Principal struct {
	UserID       uuid.UUID
	Role         entity.UserRole
	SessionToken uuid.UUID
}

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest, meta SessionMeta) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, sessionToken uuid.UUID) error
	LogoutAll(ctx context.Context, userID uuid.UUID) error
	Authenticate(ctx context.Context, accessToken string) (*Principal, error)
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	repo     *repository.Repository // user and session
	activity ActivityService
	config   *utils.Config
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	activity ActivityService,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		activity: activity,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
		now:      time.Now,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest, meta SessionMeta) (*response.AuthResponse, error) {
	// 1. Validate input
	req.Username = strings.TrimSpace(req.Username)
	req.Email = utils.TrimmedPtr(req.Email)
	if err := validate(req); err != nil {
		s.log.Warn("Signup validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Username must be free
	if _, err := s.repo.User.FindByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %q already taken: %w", req.Username, ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	// 3. Email, when given, must be free too
	if req.Email != nil {
		if _, err := s.repo.User.FindByEmail(ctx, *req.Email); err == nil {
			return nil, fmt.Errorf("email already registered: %w", ErrConflict)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Save user; a concurrent signup can still lose on the unique index
	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, signupConflict(req.Username, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 6. Auto login after signup; no session means no account
	resp, err := s.issue(ctx, user, meta)
	if err != nil {
		if delErr := s.repo.User.Delete(ctx, user.ID); delErr != nil {
			s.log.Error("Failed to roll back user after signup",
				zap.Error(delErr),
				zap.String("user_id", user.ID.String()))
		}
		return nil, err
	}

	s.activity.Record(ctx, &user.ID, entity.ActionSignup, user.Username)

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return resp, nil
}

// signupConflict words a unique-index rejection after the column it hit.
func signupConflict(username string, err error) error {
	constraint := repository.DuplicateConstraint(err)
	switch {
	case strings.Contains(constraint, "email"):
		return fmt.Errorf("email already registered: %w", ErrConflict)
	case strings.Contains(constraint, "username"):
		return fmt.Errorf("username %q already taken: %w", username, ErrConflict)
	default:
		return fmt.Errorf("username or email already taken: %w", ErrConflict)
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error) {
	// 1. Validate
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Find user by username or email
	identifier := req.Identifier()
	user, err := s.findByIdentifier(ctx, identifier)
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Warn("User not found for login", zap.String("identifier", identifier))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Create session and token
	resp, err := s.issue(ctx, user, meta)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &user.ID, entity.ActionLogin, user.Username)

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return resp, nil
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID, sessionToken uuid.UUID) error {
	if err := s.repo.Session.Revoke(ctx, sessionToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("session already ended: %w", ErrUnauthorized)
		}
		return fmt.Errorf("revoke session: %w", err)
	}

	s.activity.Record(ctx, &userID, entity.ActionLogout, "")

	s.log.Info("User logged out", zap.String("user_id", userID.String()))
	return nil
}

// LogoutAll revokes every live session of the user, the calling one included.
func (s *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
		return fmt.Errorf("revoke all sessions: %w", err)
	}

	s.activity.Record(ctx, &userID, entity.ActionLogout, "all sessions")

	s.log.Info("User logged out everywhere", zap.String("user_id", userID.String()))
	return nil
}

// Authenticate checks the token signature and expiry, then requires the bound
// session to be live and the user to still exist.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*Principal, error) {
	claims, err := utils.ParseToken([]byte(s.config.JWT.Secret), accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	session, err := s.repo.Session.FindValidSession(ctx, claims.SessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("session revoked or expired: %w", ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if !session.Active(s.now()) {
		return nil, fmt.Errorf("session revoked or expired: %w", ErrUnauthorized)
	}
	if session.UserID != claims.UserID {
		return nil, fmt.Errorf("session does not belong to token subject: %w", ErrUnauthorized)
	}

	user, err := s.repo.User.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("user gone: %w", ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &Principal{
		UserID:       user.ID,
		Role:         user.Role,
		SessionToken: session.Token,
	}, nil
}

func (s *authService) CleanExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("clean expired sessions: %w", err)
	}
	return removed, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) findByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := s.repo.User.FindByUsername(ctx, identifier)
	if errors.Is(err, repository.ErrNotFound) && strings.Contains(identifier, "@") {
		return s.repo.User.FindByEmail(ctx, identifier)
	}
	return user, err
}

func (s *authService) tokenTTL() time.Duration {
	hours := s.config.JWT.ExpiryHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// issue creates a session and signs an access token bound to it.
func (s *authService) issue(ctx context.Context, user *entity.User, meta SessionMeta) (*response.AuthResponse, error) {
	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		UserAgent: utils.TrimmedPtr(&meta.UserAgent),
		IPAddress: utils.TrimmedPtr(&meta.IPAddress),
		ExpiresAt: now.Add(s.tokenTTL()),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := utils.IssueToken([]byte(s.config.JWT.Secret), user.ID, session.Token, session.ExpiresAt)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	resp := response.AuthToResponse(user, token, session.ExpiresAt)
	return &resp, nil
}
