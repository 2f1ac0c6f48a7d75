// Package store wraps all database access behind small typed stores.
// Stores only ever report ErrNotFound and ErrConflict as domain
// failures, everything else is an infrastructure error
package store

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violation")
)
