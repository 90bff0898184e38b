package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the resources care about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
)

// Violation describes a constraint failure reported by PostgreSQL.
type Violation struct {
	Code       string
	Constraint string
	Detail     string
}

// Classify extracts the constraint violation carried by err, if any.
func Classify(err error) (Violation, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Violation{}, false
	}
	switch pgErr.Code {
	case CodeUniqueViolation, CodeForeignKeyViolation, CodeNotNullViolation, CodeCheckViolation:
		return Violation{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}, true
	}
	return Violation{}, false
}

// IsUniqueViolation reports whether err is a duplicate key error.
func IsUniqueViolation(err error) bool {
	v, ok := Classify(err)
	return ok && v.Code == CodeUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key error.
func IsForeignKeyViolation(err error) bool {
	v, ok := Classify(err)
	return ok && v.Code == CodeForeignKeyViolation
}

// IsNoRows reports whether err signals an empty single-row result.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
