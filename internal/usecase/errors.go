package usecase

import (
	"errors"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUnavailable        = errors.New("service unavailable")
)

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidation, utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// validate runs struct validation and wraps any failures.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}
	return nil
}

// notFoundOr translates a repository miss into ErrNotFound for what, passing other errors through.
func notFoundOr(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
