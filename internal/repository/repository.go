// Package repository translates single method calls into single queries
// against the table store.
//
// No repository retries, spans multiple calls, or paginates beyond the
// fixed transaction page. Store failures are wrapped so callers can tell
// a missing record apart from a failing store without ever seeing a
// driver error or a panic.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a query matched no rows.
	ErrNotFound = errors.New("record not found")
	// ErrRemote wraps every other store failure.
	ErrRemote = errors.New("store query failed")
)

func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return fmt.Errorf("%w: %w", ErrRemote, err)
}
