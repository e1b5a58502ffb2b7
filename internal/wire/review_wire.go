package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies/{id}/reviews", reviewHandler.GetMovieReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		r.Post("/api/movies/{id}/reviews", reviewHandler.CreateReview)

		// Owner or admin
		r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
