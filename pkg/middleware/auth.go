package middleware

import (
	"context"
	"errors"
	"net/http"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Authenticator resolves a bearer token into the calling principal.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*usecase.Principal, error)
}

// AuthSession requires "Authorization: Bearer <jwt>" whose session is still live
func AuthSession(auth Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			token, err := utils.BearerToken(r.Header.Get("Authorization"))
			if errors.Is(err, utils.ErrMissingToken) {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			// Verify token and session
			principal, err := auth.Authenticate(r.Context(), token)
			if errors.Is(err, usecase.ErrUnauthorized) {
				logger.Warn("Rejected token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Set context with user info and session token
			ctx := utils.SetUserContext(r.Context(), principal.UserID, string(principal.Role))
			ctx = utils.SetTokenContext(ctx, principal.SessionToken.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin - middleware cek role admin
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID from context (set by AuthSession)
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Get user from repo
			user, err := userRepo.FindByID(r.Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check if admin
			if user.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
