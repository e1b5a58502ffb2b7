// Package omdb is a thin client for the OMDb movie metadata API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie-catalog/pkg/utils"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

var (
	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("omdb api key not configured")
	// ErrNoResults covers empty results, non-200 replies and undecodable bodies.
	ErrNoResults = errors.New("omdb returned no results")
)

const defaultBaseURL = "https://www.omdbapi.com/"

// SearchResult is one hit of an s= search.
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Title is the detail record of an i= lookup.
type Title struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Genre  string `json:"Genre"`
	Plot   string `json:"Plot"`
	IMDbID string `json:"imdbID"`
}

type searchEnvelope struct {
	Search   []SearchResult `json:"Search"`
	Response string         `json:"Response"`
	Error    string         `json:"Error"`
}

type titleEnvelope struct {
	Title
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      Cache
	cacheTTL   time.Duration
	log        *zap.Logger
}

// NewClient builds a client from config. cache may be nil.
func NewClient(cfg utils.OMDbConfig, cache Cache, log *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:  baseURL,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		cache:    cache,
		cacheTTL: time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		log:      log.With(zap.String("client", "omdb")),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Search runs a title search.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{"s": {strings.TrimSpace(query)}}
	body, cached, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var env searchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.log.Warn("Undecodable search response", zap.Error(err))
		return nil, ErrNoResults
	}
	if !strings.EqualFold(env.Response, "True") || len(env.Search) == 0 {
		return nil, ErrNoResults
	}

	if !cached {
		c.cacheSet(ctx, cacheKey(params), body)
	}
	return env.Search, nil
}

// Lookup fetches one title by IMDb id.
func (c *Client) Lookup(ctx context.Context, imdbID string) (*Title, error) {
	imdbID = strings.TrimSpace(imdbID)
	params := url.Values{"i": {imdbID}, "plot": {"short"}}
	body, cached, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var env titleEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.log.Warn("Undecodable lookup response", zap.Error(err))
		return nil, ErrNoResults
	}
	if !strings.EqualFold(env.Response, "True") || strings.TrimSpace(env.Title.Title) == "" {
		return nil, ErrNoResults
	}
	if env.Title.IMDbID == "" {
		env.Title.IMDbID = imdbID
	}

	if !cached {
		c.cacheSet(ctx, cacheKey(params), body)
	}
	return &env.Title, nil
}

// get performs one GET with the api key appended, or serves a cached body.
// Callers cache a body only once it decodes into a result, under the query
// without the key.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, bool, error) {
	if !c.Configured() {
		return nil, false, ErrNotConfigured
	}

	if body, ok := c.cacheGet(ctx, cacheKey(params)); ok {
		return body, true, nil
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, false, fmt.Errorf("parse omdb base url: %w", err)
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("build omdb request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("omdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Unexpected omdb status", zap.Int("status", resp.StatusCode))
		return nil, false, ErrNoResults
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, false, fmt.Errorf("read omdb response: %w", err)
	}

	return body, false, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		return nil, false
	}
	return body, ok
}

func (c *Client) cacheSet(ctx context.Context, key string, body []byte) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

func cacheKey(params url.Values) string {
	return "omdb:" + params.Encode()
}

// ParseYear reads the leading four digits of an OMDb year such as "1999" or "2010–2014".
func ParseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if len(raw) < 4 {
		return nil
	}
	year := 0
	for _, ch := range raw[:4] {
		if ch < '0' || ch > '9' {
			return nil
		}
		year = year*10 + int(ch-'0')
	}
	return &year
}

// Clean maps OMDb's "N/A" placeholder and blanks to nil.
func Clean(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "N/A") {
		return nil
	}
	return &raw
}
