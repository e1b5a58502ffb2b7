package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies", movieHandler.GetMovies)              // ?q=&year=&by=
	r.Get("/api/movies/search", movieHandler.SearchMovies)    // ?q=
	r.Get("/api/movies/filter", movieHandler.FilterMovies)    // ?year=
	r.Get("/api/movies/sort", movieHandler.SortMovies)        // ?by=title|year|rating
	r.Get("/api/movies/page/{page}", movieHandler.PageMovies) // ?per_page=
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		r.Post("/api/movies", movieHandler.CreateMovie)
		r.Post("/api/movies/import", movieHandler.ImportMovie)
		r.Put("/api/movies/{id}", movieHandler.UpdateMovie)
		r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)
	})
}
