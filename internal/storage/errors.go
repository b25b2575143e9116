// Package storage opens the service's database handle and defines the
// error taxonomy every repository surfaces. Handlers match these
// sentinels with errors.Is to pick a response status, so no driver
// error ever leaks past this package unmapped.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a uniqueness constraint is violated,
// e.g. listing a venue with a phone number already in records.
var ErrConflict = errors.New("conflict")

// ErrReferentialIntegrity is returned when a show references an artist
// or venue id that does not exist.
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// ErrValidation is returned when a required field is missing.
var ErrValidation = errors.New("validation failed")

// Postgres error codes surfaced by lib/pq.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// MapError translates a driver error into the taxonomy above. It
// understands lib/pq error codes and falls back to sqlite constraint
// messages so repository tests on the sqlite dialect see the same
// sentinels as production. Unknown errors pass through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pqErr.Detail)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferentialIntegrity, pqErr.Detail)
		case pgNotNullViolation:
			return fmt.Errorf("%w: %s", ErrValidation, pqErr.Message)
		}
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return err
}
