package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/signup", authHandler.Signup)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(g.auth).Post("/api/logout", authHandler.Logout)
	r.With(g.auth).Post("/api/logout/all", authHandler.LogoutAll)
}
