package adaptor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(req *http.Request, userID uuid.UUID, role string) *http.Request {
	return req.WithContext(utils.SetUserContext(req.Context(), userID, role))
}

type movieServiceMock struct{ mock.Mock }

func (m *movieServiceMock) ListMovies(ctx context.Context, query usecase.MovieQuery) ([]response.MovieResponse, error) {
	args := m.Called(ctx, query)
	movies, _ := args.Get(0).([]response.MovieResponse)
	return movies, args.Error(1)
}

func (m *movieServiceMock) PageMovies(ctx context.Context, query usecase.MovieQuery, page, perPage int) (*response.PaginatedResponse[response.MovieResponse], error) {
	args := m.Called(ctx, query, page, perPage)
	result, _ := args.Get(0).(*response.PaginatedResponse[response.MovieResponse])
	return result, args.Error(1)
}

func (m *movieServiceMock) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID)
	movie, _ := args.Get(0).(*response.MovieResponse)
	return movie, args.Error(1)
}

func (m *movieServiceMock) CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, userID, req)
	movie, _ := args.Get(0).(*response.MovieResponse)
	return movie, args.Error(1)
}

func (m *movieServiceMock) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID, req)
	movie, _ := args.Get(0).(*response.MovieResponse)
	return movie, args.Error(1)
}

func (m *movieServiceMock) DeleteMovie(ctx context.Context, userID uuid.UUID, movieID string) error {
	return m.Called(ctx, userID, movieID).Error(0)
}

func (m *movieServiceMock) ImportMovie(ctx context.Context, userID uuid.UUID, req *request.ImportMovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, userID, req)
	movie, _ := args.Get(0).(*response.MovieResponse)
	return movie, args.Error(1)
}

type reviewServiceMock struct{ mock.Mock }

func (m *reviewServiceMock) CreateReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, userID, movieID, req)
	review, _ := args.Get(0).(*response.ReviewResponse)
	return review, args.Error(1)
}

func (m *reviewServiceMock) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	args := m.Called(ctx, movieID)
	reviews, _ := args.Get(0).([]response.ReviewResponse)
	return reviews, args.Error(1)
}

func (m *reviewServiceMock) UpdateReview(ctx context.Context, actor usecase.Actor, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, actor, reviewID, req)
	review, _ := args.Get(0).(*response.ReviewResponse)
	return review, args.Error(1)
}

func (m *reviewServiceMock) DeleteReview(ctx context.Context, actor usecase.Actor, reviewID string) error {
	return m.Called(ctx, actor, reviewID).Error(0)
}

type metadataServiceMock struct{ mock.Mock }

func (m *metadataServiceMock) Search(ctx context.Context, query string) (*response.MetadataSearchResponse, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*response.MetadataSearchResponse)
	return result, args.Error(1)
}
