package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireActivity(r chi.Router, activityHandler *adaptor.ActivityHandler, g guards) {
	// ==================== ADMIN ROUTES ====================
	r.With(g.auth, g.admin).Get("/api/admin/activities", activityHandler.ListRecent) // ?limit=50
}
