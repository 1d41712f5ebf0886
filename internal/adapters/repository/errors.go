package repository

import "errors"

// Sentinel kinds for catalog store errors.
var (
	ErrNotFound     = errors.New("course not found")
	ErrEmptyCatalog = errors.New("catalog must not be empty")
)
