package repository

import "errors"

// ErrNotFound is returned when a row is missing or belongs to another user.
var ErrNotFound = errors.New("repository: not found")

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
