// Package repo holds the persistence operations behind the HTTP handlers.
// Every function takes a bun.IDB so it runs equally on *bun.DB or a bun.Tx.
package repo

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when the addressed row does not exist, or when a
// filtered listing that must not be empty is.
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
