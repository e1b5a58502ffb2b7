package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestMetadataHandler_Search(t *testing.T) {
	tests := []struct {
		name   string
		result *response.MetadataSearchResponse
		err    error
		want   int
	}{
		{
			name:   "ok",
			result: &response.MetadataSearchResponse{Items: []response.MetadataItem{{Title: "Alien", IMDbID: "tt0078748"}}},
			want:   http.StatusOK,
		},
		{name: "blank query", err: &usecase.ValidationError{Fields: map[string]string{"q": "This field is required"}}, want: http.StatusBadRequest},
		{name: "no results", err: fmt.Errorf("metadata: %w", usecase.ErrNotFound), want: http.StatusNotFound},
		{name: "provider down", err: fmt.Errorf("metadata provider: %w", usecase.ErrUnavailable), want: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(metadataServiceMock)
			svc.On("Search", mock.Anything, "alien").Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			NewMetadataHandler(svc, zap.NewNop()).Search(rec, newRequest(http.MethodGet, "/api/metadata/search?q=alien", ""))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
