package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey is returned when a referenced record does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify maps driver errors onto the package sentinels, keeping the original in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Join(ErrDuplicate, err)
		case pgForeignKeyViolation:
			return errors.Join(ErrForeignKey, err)
		}
	}
	return err
}

// DuplicateConstraint names the unique constraint behind an ErrDuplicate, or
// returns "" when the error carries none.
func DuplicateConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.Is(err, ErrDuplicate) && errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

type rowScanner interface {
	Scan(dest ...any) error
}
