package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.items[key]
	return body, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = value
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, cache Cache) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(utils.OMDbConfig{
		APIKey:          "test-key",
		BaseURL:         srv.URL + "/",
		TimeoutSeconds:  2,
		CacheTTLMinutes: 5,
	}, cache, zap.NewNop())
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "matrix", r.URL.Query().Get("s"))
		_, _ = w.Write([]byte(`{"Search":[{"Title":"The Matrix","Year":"1999","imdbID":"tt0133093","Type":"movie","Poster":"N/A"}],"totalResults":"1","Response":"True"}`))
	}, nil)

	results, err := client.Search(context.Background(), " matrix ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Matrix", results[0].Title)
	assert.Equal(t, "tt0133093", results[0].IMDbID)
}

func TestClient_NoResultsCases(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "response false", status: http.StatusOK, payload: `{"Response":"False","Error":"Movie not found!"}`},
		{name: "non-200", status: http.StatusUnauthorized, payload: `{"Response":"False","Error":"Invalid API key!"}`},
		{name: "undecodable", status: http.StatusOK, payload: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}, nil)

			_, err := client.Search(context.Background(), "x")
			assert.ErrorIs(t, err, ErrNoResults)

			_, err = client.Lookup(context.Background(), "tt0")
			assert.ErrorIs(t, err, ErrNoResults)
		})
	}
}

func TestClient_Lookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tt0133093", r.URL.Query().Get("i"))
		_, _ = w.Write([]byte(`{"Title":"The Matrix","Year":"1999","Genre":"Action, Sci-Fi","Plot":"A hacker learns the truth.","imdbID":"tt0133093","Response":"True"}`))
	}, nil)

	title, err := client.Lookup(context.Background(), "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", title.Title)
	assert.Equal(t, "Action, Sci-Fi", title.Genre)
	assert.Equal(t, "A hacker learns the truth.", title.Plot)
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient(utils.OMDbConfig{}, nil, zap.NewNop())
	assert.False(t, client.Configured())

	_, err := client.Search(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_CachesResponses(t *testing.T) {
	var calls atomic.Int32
	cache := &memoryCache{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"Search":[{"Title":"Heat","Year":"1995","imdbID":"tt0113277","Type":"movie"}],"Response":"True"}`))
	}, cache)

	for i := 0; i < 3; i++ {
		results, err := client.Search(context.Background(), "heat")
		require.NoError(t, err)
		require.Len(t, results, 1)
	}

	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, cache.items, "omdb:s=heat")
}

func TestClient_DoesNotCacheFailedLookups(t *testing.T) {
	var calls atomic.Int32
	cache := &memoryCache{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}, cache)

	for i := 0; i < 2; i++ {
		_, err := client.Search(context.Background(), "nothing")
		assert.ErrorIs(t, err, ErrNoResults)
		_, err = client.Lookup(context.Background(), "tt0000000")
		assert.ErrorIs(t, err, ErrNoResults)
	}

	assert.Equal(t, int32(4), calls.Load())
	assert.Empty(t, cache.items)
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 1999, *ParseYear("1999"))
	assert.Equal(t, 2010, *ParseYear("2010–2014"))
	assert.Nil(t, ParseYear("N/A"))
	assert.Nil(t, ParseYear("99"))
}

func TestClean(t *testing.T) {
	assert.Nil(t, Clean("N/A"))
	assert.Nil(t, Clean("  "))
	assert.Equal(t, "Drama", *Clean(" Drama "))
}
