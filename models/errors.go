package models

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write collides with a unique constraint.
	ErrDuplicate  = errors.New("duplicate record")
	ErrLoginTaken = fmt.Errorf("%w: login already taken", ErrDuplicate)
	ErrEmailTaken = fmt.Errorf("%w: email already taken", ErrDuplicate)

	// ErrInvalidReference is returned when a foreign key points at a missing row.
	ErrInvalidReference = errors.New("referenced record does not exist")

	ErrRequiredField    = errors.New("required field is empty")
	ErrTooLong          = errors.New("value is too long")
	ErrInvalidChoice    = errors.New("value is not one of the allowed choices")
	ErrInvalidPrecision = errors.New("decimal value does not fit 10 digits with 2 decimal places")
	ErrInvalidExtension = errors.New("file extension is not allowed")
)

// Postgres SQLSTATE codes the store can raise on a rejected write.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
)

// uniqueConstraints maps unique index names to the error reported for them.
var uniqueConstraints = map[string]error{
	"idx_accounts_login": ErrLoginTaken,
	"idx_accounts_email": ErrEmailTaken,
}

// translateError converts driver and gorm errors into the package's
// sentinel errors. Anything it does not recognise is returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var code, constraint, column string

	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code, constraint, column = pgErr.Code, pgErr.ConstraintName, pgErr.ColumnName
	case errors.As(err, &pqErr):
		code, constraint, column = string(pqErr.Code), pqErr.Constraint, pqErr.Column
	default:
		return err
	}

	switch code {
	case codeUniqueViolation:
		if known, ok := uniqueConstraints[constraint]; ok {
			return known
		}
		return fmt.Errorf("%w: %s", ErrDuplicate, constraint)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrInvalidReference, constraint)
	case codeNotNullViolation:
		return fmt.Errorf("%w: %s", ErrRequiredField, column)
	}
	return err
}
