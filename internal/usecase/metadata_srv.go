package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/omdb"

	"go.uber.org/zap"
)

// MetadataProvider is the external metadata source. *omdb.Client satisfies it.
type MetadataProvider interface {
	Configured() bool
	Search(ctx context.Context, query string) ([]omdb.SearchResult, error)
	Lookup(ctx context.Context, imdbID string) (*omdb.Title, error)
}

type MetadataService interface {
	Search(ctx context.Context, query string) (*response.MetadataSearchResponse, error)
}

type metadataService struct {
	provider MetadataProvider
	log      *zap.Logger
}

func NewMetadataService(provider MetadataProvider, log *zap.Logger) MetadataService {
	return &metadataService{
		provider: provider,
		log:      log.With(zap.String("service", "metadata")),
	}
}

func (s *metadataService) Search(ctx context.Context, query string) (*response.MetadataSearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newValidationError(map[string]string{"q": "This field is required"})
	}

	if s.provider == nil || !s.provider.Configured() {
		return nil, fmt.Errorf("metadata api key not set: %w", ErrUnavailable)
	}

	results, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, metadataError(err, s.log)
	}

	items := make([]response.MetadataItem, 0, len(results))
	for _, r := range results {
		items = append(items, response.MetadataItem{
			Title:  r.Title,
			Year:   r.Year,
			IMDbID: r.IMDbID,
			Type:   r.Type,
			Poster: r.Poster,
		})
	}

	return &response.MetadataSearchResponse{Items: items}, nil
}

// metadataError maps provider failures: no results is a miss, everything else
// leaves the provider unavailable.
func metadataError(err error, log *zap.Logger) error {
	switch {
	case errors.Is(err, omdb.ErrNoResults):
		return fmt.Errorf("metadata: %w", ErrNotFound)
	case errors.Is(err, omdb.ErrNotConfigured):
		return fmt.Errorf("metadata api key not set: %w", ErrUnavailable)
	default:
		log.Warn("Metadata provider failed", zap.Error(err))
		return fmt.Errorf("metadata provider: %w", ErrUnavailable)
	}
}
