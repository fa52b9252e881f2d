// Package common defines shared constants and sentinel errors used across
// the storage, service and CLI layers of MemoryBook. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (empty required fields, unsafe names).
	ErrInvalidInput = errors.New("invalid input")

	// Account errors.
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Image store errors.
	ErrIngest      = errors.New("image ingest failed")
	ErrMissingFile = errors.New("file is missing")
)
