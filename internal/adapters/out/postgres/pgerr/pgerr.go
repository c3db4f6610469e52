// Package pgerr translates postgres driver errors into domain error kinds so
// that application code never imports driver packages.
package pgerr

import (
	"errors"

	"packing/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err comes from a unique constraint.
// Both the raw pgx error and gorm's translated ErrDuplicatedKey are recognized.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsForeignKeyViolation reports whether err comes from a foreign key whose
// referenced row does not exist.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// Translate maps unique violations to errs.ConflictError and passes every
// other error through unchanged.
func Translate(err error, paramName string) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewConflictErrorWithCause(paramName, err)
	}
	return err
}
