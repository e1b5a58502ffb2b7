package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errRecorded = errors.New("recorded")

// recordingDB captures the statement sent to the pool and fails it.
type recordingDB struct {
	sql  string
	args []any
}

func (d *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.sql, d.args = sql, args
	return nil, errRecorded
}

func (d *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.sql, d.args = sql, args
	return failedRow{}
}

func (d *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.sql, d.args = sql, args
	return pgconn.CommandTag{}, errRecorded
}

func (d *recordingDB) Begin(context.Context) (pgx.Tx, error) { return nil, errRecorded }

func (d *recordingDB) Ping(context.Context) error { return nil }

func (d *recordingDB) Close() {}

type failedRow struct{}

func (failedRow) Scan(...any) error { return errRecorded }

func TestMovieRepository_TitleSearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := &recordingDB{}
	repo := NewMovieRepository(db, zap.NewNop())

	_, err := repo.List(context.Background(), MovieFilter{Query: "Matrix"})
	require.ErrorIs(t, err, errRecorded)

	assert.Contains(t, db.sql, `WHERE title ILIKE $1 ESCAPE '\'`)
	assert.Equal(t, []any{"%Matrix%"}, db.args)

	_, err = repo.Count(context.Background(), MovieFilter{Query: "Matrix"})
	require.ErrorIs(t, err, errRecorded)

	assert.Contains(t, db.sql, `WHERE title ILIKE $1 ESCAPE '\'`)
	assert.Equal(t, []any{"%Matrix%"}, db.args)
}

func TestMovieRepository_EmptySearchMatchesAll(t *testing.T) {
	db := &recordingDB{}
	repo := NewMovieRepository(db, zap.NewNop())

	_, err := repo.List(context.Background(), MovieFilter{Query: "  "})
	require.ErrorIs(t, err, errRecorded)

	assert.NotContains(t, db.sql, "WHERE")
	assert.Empty(t, db.args)
}
