package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// PostgreSQL error codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeTooManyConnections  = "53300"

	classDataException = "22"
	classConnection    = "08"
	classOperatorGone  = "57P"
)

// MapError converts pgx/pgconn errors to domain errors.
// key identifies the row in the message (an id, a habit/date pair).
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target := classify(pgErr.Code); target != nil {
			return fmt.Errorf("%s %v: %w", entity, key, target)
		}
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s %v: %w: %w", entity, key, domain.ErrUnavailable, err)
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

// classify returns the domain sentinel for a SQLSTATE, or nil when the
// code has no domain meaning.
func classify(code string) error {
	switch code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		return domain.ErrNotFound
	case codeCheckViolation, codeNotNullViolation:
		return domain.ErrValidation
	case codeTooManyConnections:
		return domain.ErrUnavailable
	}

	switch {
	case hasClass(code, classDataException):
		return domain.ErrValidation
	case hasClass(code, classConnection), hasClass(code, classOperatorGone):
		return domain.ErrUnavailable
	}
	return nil
}

func hasClass(code, class string) bool {
	return len(code) >= len(class) && code[:len(class)] == class
}
