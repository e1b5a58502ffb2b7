package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))
	assert.ErrorIs(t, classify(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, classify(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)

	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_username_key"}
	err := classify(unique)
	assert.ErrorIs(t, err, ErrDuplicate)
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "users_username_key", pgErr.ConstraintName)

	assert.ErrorIs(t, classify(&pgconn.PgError{Code: pgForeignKeyViolation}), ErrForeignKey)

	wrapped := fmt.Errorf("create user alice: %w", classify(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}))
	assert.Equal(t, "users_email_key", DuplicateConstraint(wrapped))
	assert.Empty(t, DuplicateConstraint(ErrDuplicate))
	assert.Empty(t, DuplicateConstraint(classify(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "reviews_user_id_fkey"})))

	other := errors.New("connection reset")
	assert.Equal(t, other, classify(other))
}
