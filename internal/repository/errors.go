package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist in the
	// backing store.
	ErrNotFound = errors.New("not found")
)
