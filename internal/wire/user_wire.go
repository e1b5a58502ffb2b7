package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures profile and user management routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	// ==================== PROTECTED USER ROUTES ====================
	r.With(g.auth).Get("/api/me", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	r.With(g.auth, g.admin).Get("/api/admin/users", userHandler.GetAllUsers) // ?page=1&per_page=10
}
