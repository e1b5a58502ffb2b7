package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	"movie-catalog/internal/catalog"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies?q=&year=&by= (public)
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	h.list(w, r, query, "get movies")
}

// SearchMovies handles GET /api/movies/search?q= (public)
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, usecase.MovieQuery{Search: r.URL.Query().Get("q")}, "search movies")
}

// FilterMovies handles GET /api/movies/filter?year= (public)
func (h *MovieHandler) FilterMovies(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(w, r.URL.Query().Get("year"), true)
	if !ok {
		return
	}

	h.list(w, r, usecase.MovieQuery{Year: year}, "filter movies")
}

// SortMovies handles GET /api/movies/sort?by= (public)
func (h *MovieHandler) SortMovies(w http.ResponseWriter, r *http.Request) {
	sortKey := catalog.ParseSortKey(r.URL.Query().Get("by"))
	h.list(w, r, usecase.MovieQuery{Sort: sortKey}, "sort movies")
}

// PageMovies handles GET /api/movies/page/{page}?per_page= (public)
func (h *MovieHandler) PageMovies(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil || page < 1 {
		utils.ResponseBadRequest(w, "Page must be a positive integer", nil)
		return
	}

	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), catalog.DefaultPerPage)

	result, err := h.service.PageMovies(r.Context(), query, page, perPage)
	if err != nil {
		handleServiceError(w, h.log, err, "page movies")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetMovieByID handles GET /api/movies/{id} (public)
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /api/movies (protected)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MovieRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

// UpdateMovie handles PUT /api/movies/{id} (protected)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated", movie)
}

// DeleteMovie handles DELETE /api/movies/{id} (protected)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteMovie(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted", nil)
}

// ImportMovie handles POST /api/movies/import (protected)
func (h *MovieHandler) ImportMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ImportMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.ImportMovie(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "import movie")
		return
	}

	utils.ResponseCreated(w, "Movie imported", movie)
}

func (h *MovieHandler) list(w http.ResponseWriter, r *http.Request, query usecase.MovieQuery, operation string) {
	movies, err := h.service.ListMovies(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// parseQuery reads the optional q, year and by parameters.
func (h *MovieHandler) parseQuery(w http.ResponseWriter, r *http.Request) (usecase.MovieQuery, bool) {
	params := r.URL.Query()

	year, ok := parseYear(w, params.Get("year"), false)
	if !ok {
		return usecase.MovieQuery{}, false
	}

	return usecase.MovieQuery{
		Search: params.Get("q"),
		Year:   year,
		Sort:   catalog.ParseSortKey(params.Get("by")),
	}, true
}

// parseYear writes a 400 and reports false when raw is not an integer, or is
// blank while required.
func parseYear(w http.ResponseWriter, raw string, required bool) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			utils.ResponseBadRequest(w, "Validation failed", map[string]string{"year": "This field is required"})
			return nil, false
		}
		return nil, true
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"year": "Must be an integer"})
		return nil, false
	}
	return &year, true
}
