package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/catalog"
	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/omdb"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieQuery combines search, year filter and ordering. Zero value lists every
// movie by title.
type MovieQuery struct {
	Search string
	Year   *int
	Sort   catalog.SortKey
}

type MovieService interface {
	ListMovies(ctx context.Context, query MovieQuery) ([]response.MovieResponse, error)
	PageMovies(ctx context.Context, query MovieQuery, page, perPage int) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, userID uuid.UUID, movieID string) error
	ImportMovie(ctx context.Context, userID uuid.UUID, req *request.ImportMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo     *repository.Repository // movie and review
	metadata MetadataProvider
	activity ActivityService
	log      *zap.Logger
	now      func() time.Time
}

func NewMovieService(
	repo *repository.Repository,
	metadata MetadataProvider,
	activity ActivityService,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:     repo,
		metadata: metadata,
		activity: activity,
		log:      log.With(zap.String("service", "movie")),
		now:      time.Now,
	}
}

func (s *movieService) ListMovies(ctx context.Context, query MovieQuery) ([]response.MovieResponse, error) {
	entries, err := s.listEntries(ctx, s.filter(query))
	if err != nil {
		return nil, err
	}
	if query.Sort == catalog.SortByRating {
		catalog.SortByAverage(entries)
	}

	s.log.Debug("Movies listed",
		zap.String("search", query.Search),
		zap.Intp("year", query.Year),
		zap.String("sort", string(query.Sort)),
		zap.Int("count", len(entries)),
	)

	return response.MoviesToResponse(entries), nil
}

func (s *movieService) PageMovies(ctx context.Context, query MovieQuery, page, perPage int) (*response.PaginatedResponse[response.MovieResponse], error) {
	if page < 1 {
		return nil, newValidationError(map[string]string{"page": "Must be at least 1"})
	}
	window := catalog.NewWindow(page, perPage)
	filter := s.filter(query)

	// Rating order only exists after aggregation, so the whole listing is
	// ranked before the window is cut.
	if query.Sort == catalog.SortByRating {
		entries, err := s.listEntries(ctx, filter)
		if err != nil {
			return nil, err
		}
		catalog.SortByAverage(entries)
		paged := catalog.Paginate(entries, window)
		return response.NewPaginatedResponse(response.MoviesToResponse(paged), window.Page, window.PerPage, int64(len(entries))), nil
	}

	total, err := s.repo.Movie.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	if int64(window.Offset) >= total {
		return response.NewPaginatedResponse([]response.MovieResponse{}, window.Page, window.PerPage, total), nil
	}

	filter.Limit = window.Limit
	filter.Offset = window.Offset
	entries, err := s.listEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.MoviesToResponse(entries), window.Page, window.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, movie)
}

func (s *movieService) CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	// 1. Normalize and validate
	req.Title = strings.TrimSpace(req.Title)
	req.Genre = utils.TrimmedPtr(req.Genre)
	req.Description = utils.TrimmedPtr(req.Description)
	req.IMDbID = utils.TrimmedPtr(req.IMDbID)
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Build and save
	now := s.now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Description: req.Description,
		IMDbID:      req.IMDbID,
	}

	if err := s.saveNew(ctx, movie); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &userID, entity.ActionMovieCreate, movie.Title)

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(catalog.Summarize(movie, nil))
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	// 1. Validate
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Load existing
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	// 3. Apply provided fields only
	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.ReleaseYear != nil {
		movie.ReleaseYear = req.ReleaseYear
	}
	if req.Genre != nil {
		movie.Genre = utils.TrimmedPtr(req.Genre)
	}
	if req.Description != nil {
		movie.Description = utils.TrimmedPtr(req.Description)
	}
	if req.IMDbID != nil {
		movie.IMDbID = utils.TrimmedPtr(req.IMDbID)
	}
	movie.UpdatedAt = s.now()

	// 4. Save
	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fmt.Errorf("imdb id already catalogued: %w", ErrConflict)
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movie.ID.String()))

	return s.toResponse(ctx, movie)
}

func (s *movieService) DeleteMovie(ctx context.Context, userID uuid.UUID, movieID string) error {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return err
	}

	if err := s.repo.Movie.Delete(ctx, movie.ID); err != nil {
		return notFoundOr(err, "movie "+movieID)
	}

	s.activity.Record(ctx, &userID, entity.ActionMovieDelete, movie.Title)

	return nil
}

// ImportMovie creates a movie from a metadata lookup by IMDb id.
func (s *movieService) ImportMovie(ctx context.Context, userID uuid.UUID, req *request.ImportMovieRequest) (*response.MovieResponse, error) {
	req.IMDbID = strings.TrimSpace(req.IMDbID)
	if err := validate(req); err != nil {
		return nil, err
	}
	if s.metadata == nil || !s.metadata.Configured() {
		return nil, fmt.Errorf("metadata api key not set: %w", ErrUnavailable)
	}

	// Already catalogued: no need to ask the provider
	if _, err := s.repo.Movie.FindByIMDbID(ctx, req.IMDbID); err == nil {
		return nil, fmt.Errorf("imdb id %s already catalogued: %w", req.IMDbID, ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check imdb id: %w", err)
	}

	title, err := s.metadata.Lookup(ctx, req.IMDbID)
	if err != nil {
		return nil, metadataError(err, s.log)
	}

	now := s.now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       strings.TrimSpace(title.Title),
		ReleaseYear: omdb.ParseYear(title.Year),
		Genre:       omdb.Clean(title.Genre),
		Description: omdb.Clean(title.Plot),
		IMDbID:      &req.IMDbID,
	}

	if err := s.saveNew(ctx, movie); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &userID, entity.ActionMovieImport, req.IMDbID)

	s.log.Info("Movie imported",
		zap.String("movie_id", movie.ID.String()),
		zap.String("imdb_id", req.IMDbID),
	)

	resp := response.MovieToResponse(catalog.Summarize(movie, nil))
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *movieService) filter(query MovieQuery) repository.MovieFilter {
	return repository.MovieFilter{
		Query: query.Search,
		Year:  query.Year,
		Sort:  query.Sort,
	}
}

// listEntries loads movies for filter and attaches their current ratings.
func (s *movieService) listEntries(ctx context.Context, filter repository.MovieFilter) ([]catalog.Entry, error) {
	movies, err := s.repo.Movie.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	ids := make([]uuid.UUID, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}

	ratings, err := s.repo.Review.RatingsByMovieIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	return catalog.SummarizeAll(movies, ratings), nil
}

func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie %q: %w", movieID, ErrNotFound)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "movie "+movieID)
	}
	return movie, nil
}

func (s *movieService) toResponse(ctx context.Context, movie *entity.Movie) (*response.MovieResponse, error) {
	ratings, err := s.repo.Review.RatingsByMovieIDs(ctx, []uuid.UUID{movie.ID})
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	resp := response.MovieToResponse(catalog.Summarize(movie, ratings[movie.ID]))
	return &resp, nil
}

func (s *movieService) saveNew(ctx context.Context, movie *entity.Movie) error {
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("imdb id already catalogued: %w", ErrConflict)
		}
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}
