package feedback

import "errors"

// Sentinel kinds for feedback sink errors.
var (
	ErrNoPath = errors.New("feedback file path must not be empty")
)
