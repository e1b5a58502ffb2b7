package usecase_test

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/omdb"
	"movie-catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetadataService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("maps results", func(t *testing.T) {
		svc := usecase.NewMetadataService(&fakeProvider{
			configured: true,
			results:    []omdb.SearchResult{{Title: "Heat", Year: "1995", IMDbID: "tt0113277", Type: "movie"}},
		}, zap.NewNop())

		resp, err := svc.Search(ctx, "heat")
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "tt0113277", resp.Items[0].IMDbID)
	})

	t.Run("blank query", func(t *testing.T) {
		svc := usecase.NewMetadataService(&fakeProvider{configured: true}, zap.NewNop())
		_, err := svc.Search(ctx, "  ")
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("no results", func(t *testing.T) {
		svc := usecase.NewMetadataService(&fakeProvider{configured: true}, zap.NewNop())
		_, err := svc.Search(ctx, "zzz")
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := usecase.NewMetadataService(&fakeProvider{}, zap.NewNop())
		_, err := svc.Search(ctx, "heat")
		assert.ErrorIs(t, err, usecase.ErrUnavailable)
	})

	t.Run("transport failure", func(t *testing.T) {
		svc := usecase.NewMetadataService(&fakeProvider{configured: true, err: errors.New("dial tcp: timeout")}, zap.NewNop())
		_, err := svc.Search(ctx, "heat")
		assert.ErrorIs(t, err, usecase.ErrUnavailable)
	})
}
