package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/catalog"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieRouter(svc *movieServiceMock) *chi.Mux {
	h := NewMovieHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/movies", h.GetMovies)
	r.Get("/api/movies/search", h.SearchMovies)
	r.Get("/api/movies/filter", h.FilterMovies)
	r.Get("/api/movies/sort", h.SortMovies)
	r.Get("/api/movies/page/{page}", h.PageMovies)
	r.Get("/api/movies/{id}", h.GetMovieByID)
	r.Post("/api/movies", h.CreateMovie)
	r.Delete("/api/movies/{id}", h.DeleteMovie)
	return r
}

func TestMovieHandler_GetMovies_PassesQuery(t *testing.T) {
	svc := new(movieServiceMock)
	year := 1999
	svc.On("ListMovies", mock.Anything, usecase.MovieQuery{Search: "matrix", Year: &year, Sort: catalog.SortByRating}).
		Return([]response.MovieResponse{{Title: "The Matrix"}}, nil)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodGet, "/api/movies?q=matrix&year=1999&by=rating", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Status)
	assert.Contains(t, string(env.Data), "The Matrix")
	svc.AssertExpectations(t)
}

func TestMovieHandler_SearchMovies(t *testing.T) {
	svc := new(movieServiceMock)
	svc.On("ListMovies", mock.Anything, usecase.MovieQuery{Search: "Matrix"}).
		Return([]response.MovieResponse{{Title: "The Matrix Reloaded"}}, nil)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodGet, "/api/movies/search?q=Matrix", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "The Matrix Reloaded")
	svc.AssertExpectations(t)
}

func TestMovieHandler_BadYear(t *testing.T) {
	for _, target := range []string{"/api/movies?year=abc", "/api/movies/filter?year=19x9", "/api/movies/filter"} {
		t.Run(target, func(t *testing.T) {
			svc := new(movieServiceMock)

			rec := httptest.NewRecorder()
			newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodGet, target, ""))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Status)
			assert.Contains(t, env.Errors, "year")
			svc.AssertNotCalled(t, "ListMovies", mock.Anything, mock.Anything)
		})
	}
}

func TestMovieHandler_SortDefaultsToTitle(t *testing.T) {
	svc := new(movieServiceMock)
	svc.On("ListMovies", mock.Anything, usecase.MovieQuery{Sort: catalog.SortByTitle}).
		Return([]response.MovieResponse{}, nil)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodGet, "/api/movies/sort?by=popularity", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestMovieHandler_PageMovies(t *testing.T) {
	t.Run("invalid page number", func(t *testing.T) {
		for _, page := range []string{"0", "-1", "two"} {
			svc := new(movieServiceMock)
			rec := httptest.NewRecorder()
			newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodGet, "/api/movies/page/"+page, ""))

			assert.Equal(t, http.StatusBadRequest, rec.Code, page)
			svc.AssertNotCalled(t, "PageMovies", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("passes page and per_page", func(t *testing.T) {
		svc := new(movieServiceMock)
		svc.On("PageMovies", mock.Anything, usecase.MovieQuery{Sort: catalog.SortByTitle}, 2, 5).
			Return(&response.PaginatedResponse[response.MovieResponse]{Data: []response.MovieResponse{}}, nil)

		rec := httptest.NewRecorder()
		newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodGet, "/api/movies/page/2?per_page=5", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestMovieHandler_GetMovieByID_NotFound(t *testing.T) {
	svc := new(movieServiceMock)
	svc.On("GetMovieByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("movie missing: %w", usecase.ErrNotFound))

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodGet, "/api/movies/missing", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Status)
}

func TestMovieHandler_CreateMovie(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		svc := new(movieServiceMock)
		rec := httptest.NewRecorder()
		newMovieRouter(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/api/movies", `{"title":"Heat"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(movieServiceMock)
		rec := httptest.NewRecorder()
		req := asUser(newRequest(http.MethodPost, "/api/movies", `{"title":`), uuid.New(), "user")
		newMovieRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation errors are returned per field", func(t *testing.T) {
		svc := new(movieServiceMock)
		userID := uuid.New()
		svc.On("CreateMovie", mock.Anything, userID, mock.AnythingOfType("*request.MovieRequest")).
			Return(nil, &usecase.ValidationError{Fields: map[string]string{"title": "This field is required"}})

		rec := httptest.NewRecorder()
		newMovieRouter(svc).ServeHTTP(rec, asUser(newRequest(http.MethodPost, "/api/movies", `{}`), userID, "user"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "This field is required", decodeEnvelope(t, rec).Errors["title"])
	})

	t.Run("created", func(t *testing.T) {
		svc := new(movieServiceMock)
		userID := uuid.New()
		svc.On("CreateMovie", mock.Anything, userID, mock.MatchedBy(func(req *request.MovieRequest) bool {
			return req.Title == "Heat" && req.ReleaseYear != nil && *req.ReleaseYear == 1995
		})).Return(&response.MovieResponse{ID: uuid.NewString(), Title: "Heat"}, nil)

		rec := httptest.NewRecorder()
		body := `{"title":"Heat","release_year":1995}`
		newMovieRouter(svc).ServeHTTP(rec, asUser(newRequest(http.MethodPost, "/api/movies", body), userID, "user"))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Status)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate imdb id conflicts", func(t *testing.T) {
		svc := new(movieServiceMock)
		userID := uuid.New()
		svc.On("CreateMovie", mock.Anything, userID, mock.Anything).
			Return(nil, fmt.Errorf("imdb id taken: %w", usecase.ErrConflict))

		rec := httptest.NewRecorder()
		body := `{"title":"Heat","imdb_id":"tt0113277"}`
		newMovieRouter(svc).ServeHTTP(rec, asUser(newRequest(http.MethodPost, "/api/movies", body), userID, "user"))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMovieHandler_DeleteMovie(t *testing.T) {
	svc := new(movieServiceMock)
	userID := uuid.New()
	movieID := uuid.NewString()
	svc.On("DeleteMovie", mock.Anything, userID, movieID).Return(nil)

	rec := httptest.NewRecorder()
	newMovieRouter(svc).ServeHTTP(rec, asUser(newRequest(http.MethodDelete, "/api/movies/"+movieID, ""), userID, "user"))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
