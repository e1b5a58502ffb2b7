package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/catalog"
	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieFilter narrows and orders a movie listing. Zero Limit means no limit.
// Rating order is not expressible here and falls back to retrieval order.
type MovieFilter struct {
	Query  string
	Year   *int
	Sort   catalog.SortKey
	Limit  int
	Offset int
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByIMDbID(ctx context.Context, imdbID string) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error)
	Count(ctx context.Context, filter MovieFilter) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, release_year, genre, description, imdb_id, created_at, updated_at`

func scanMovie(row rowScanner) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.ReleaseYear,
		&movie.Genre,
		&movie.Description,
		&movie.IMDbID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// buildMovieWhere renders the shared WHERE clause and its args, numbering from $1.
func buildMovieWhere(filter MovieFilter) (string, []any) {
	var conds []string
	args := []any{}

	if pattern, ok := catalog.LikePattern(filter.Query); ok {
		args = append(args, pattern)
		conds = append(conds, fmt.Sprintf(`title ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conds = append(conds, fmt.Sprintf("release_year = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func movieOrderBy(key catalog.SortKey) string {
	switch key {
	case catalog.SortByYear:
		return " ORDER BY release_year DESC NULLS LAST, created_at ASC, id ASC"
	case catalog.SortByRating:
		return " ORDER BY created_at ASC, id ASC"
	default:
		return " ORDER BY title ASC, created_at ASC, id ASC"
	}
}

func buildMovieListQuery(filter MovieFilter) (string, []any) {
	var qb strings.Builder
	qb.WriteString("SELECT " + movieColumns + " FROM movies")

	where, args := buildMovieWhere(filter)
	qb.WriteString(where)
	qb.WriteString(movieOrderBy(filter.Sort))

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		qb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		qb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	return qb.String(), args
}

func buildMovieCountQuery(filter MovieFilter) (string, []any) {
	where, args := buildMovieWhere(filter)
	return "SELECT COUNT(*) FROM movies" + where, args
}

// Create inserts a movie. A repeated imdb_id yields ErrDuplicate.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, release_year, genre, description, imdb_id,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.ReleaseYear,
		movie.Genre,
		movie.Description,
		movie.IMDbID,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", classify(err))
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		err = classify(err)
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to find movie by ID",
				zap.Error(err),
				zap.String("movie_id", id.String()),
			)
		}
		return nil, fmt.Errorf("find movie %s: %w", id, err)
	}

	return movie, nil
}

func (r *movieRepository) FindByIMDbID(ctx context.Context, imdbID string) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE imdb_id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, imdbID))
	if err != nil {
		err = classify(err)
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to find movie by IMDb ID",
				zap.Error(err),
				zap.String("imdb_id", imdbID),
			)
		}
		return nil, fmt.Errorf("find movie by imdb id %s: %w", imdbID, err)
	}

	return movie, nil
}

func (r *movieRepository) List(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error) {
	query, args := buildMovieListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list movies",
			zap.Error(err),
			zap.String("query", filter.Query),
			zap.Intp("year", filter.Year),
			zap.String("sort", string(filter.Sort)),
		)
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("offset", filter.Offset),
		zap.Int("limit", filter.Limit),
	)

	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context, filter MovieFilter) (int64, error) {
	query, args := buildMovieCountQuery(filter)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, release_year = $3, genre = $4, description = $5,
		    imdb_id = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.ReleaseYear,
		movie.Genre,
		movie.Description,
		movie.IMDbID,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID, classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update movie %s: %w", movie.ID, ErrNotFound)
	}

	return nil
}

// Delete removes the movie; its reviews go with it through the foreign key cascade.
func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete movie %s: %w", id, ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
