// Package pgerrs classifies PostgreSQL errors raised through gorm.
package pgerrs

import (
	"errors"

	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Classify turns integrity violations into errs.ConflictError for the given
// entity and leaves every other error untouched.
func Classify(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConflictErrorWithCause(entity, id, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation:
			return errs.NewConflictErrorWithCause(entity, id, err)
		}
	}

	return err
}
