package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrInvalidQuery   = errors.New("query text is empty")
	ErrInvalidFilter  = errors.New("invalid filter")
	ErrMatrixMismatch = errors.New("catalog and feature matrix sizes differ")
	ErrNilEncoder     = errors.New("encoder must not be nil")
)
