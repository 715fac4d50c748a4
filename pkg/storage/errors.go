package storage

import "errors"

var (
	// ErrNotFound indicates no document exists at the requested key.
	ErrNotFound = errors.New("document not found")
	// ErrEmptyKey indicates an empty storage key was provided.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey indicates the storage key contains a path traversal segment.
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
	// ErrPersistence wraps backend read and write failures.
	ErrPersistence = errors.New("persistence failure")
)
