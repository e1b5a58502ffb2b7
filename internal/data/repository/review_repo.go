package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithAuthor, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithAuthor, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// RatingsByMovieIDs groups the ratings of each listed movie. Movies without
	// reviews are absent from the map.
	RatingsByMovieIDs(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]int, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewWithAuthorSelect = `
	SELECT r.id, r.movie_id, r.user_id, r.rating, r.comment, r.created_at, r.updated_at,
	       u.username
	FROM reviews r
	JOIN users u ON u.id = r.user_id
`

func scanReviewWithAuthor(row rowScanner) (*entity.ReviewWithAuthor, error) {
	var review entity.ReviewWithAuthor
	err := row.Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.Username,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Create inserts a review. An unknown movie or user yields ErrForeignKey.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, movie_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.MovieID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), classify(err))
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithAuthor, error) {
	query := reviewWithAuthorSelect + ` WHERE r.id = $1`

	review, err := scanReviewWithAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		err = classify(err)
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to find review by ID",
				zap.Error(err),
				zap.String("review_id", id.String()),
			)
		}
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

// FindByMovieID lists a movie's reviews oldest first.
func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	query := reviewWithAuthorSelect + `
		WHERE r.movie_id = $1
		ORDER BY r.created_at ASC, r.id ASC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	reviews := make([]*entity.ReviewWithAuthor, 0)
	for rows.Next() {
		review, err := scanReviewWithAuthor(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reviews by user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
		review.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update review %s: %w", review.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete review %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) RatingsByMovieIDs(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	ratings := make(map[uuid.UUID][]int, len(movieIDs))
	if len(movieIDs) == 0 {
		return ratings, nil
	}

	query := `SELECT movie_id, rating FROM reviews WHERE movie_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to load ratings",
			zap.Error(err),
			zap.Int("movie_count", len(movieIDs)),
		)
		return nil, fmt.Errorf("load ratings for %d movies: %w", len(movieIDs), err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			movieID uuid.UUID
			rating  int
		)
		if err := rows.Scan(&movieID, &rating); err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings[movieID] = append(ratings[movieID], rating)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}
