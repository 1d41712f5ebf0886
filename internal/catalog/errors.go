package catalog

import "errors"

// Sentinel kinds for catalog load errors. Both are fatal to the process.
var (
	ErrDataFormat   = errors.New("dataset format invalid")
	ErrEmptyCatalog = errors.New("dataset has no usable rows")
)
