// Package skipdberrors defines the sentinel errors shared across the table,
// server, and client packages.
package skipdberrors

import "errors"

var (
	// ErrDuplicateKey is returned by Table.Add when the record's primary
	// key (id) already exists in the table.
	ErrDuplicateKey = errors.New("skipdb: duplicate key")

	// ErrNotFound is returned by Table.Remove and Table.Update when the
	// requested id is not present in the table.
	ErrNotFound = errors.New("skipdb: not found")

	// ErrInvalidRequest marks a malformed fetch request. The dispatcher
	// never treats this as fatal; it simply returns an ok=false response.
	ErrInvalidRequest = errors.New("skipdb: invalid request")
)
