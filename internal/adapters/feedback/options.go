package feedback

import "github.com/RAloysia/course-recommendation-app/pkg/logger"

// Option applies a configuration option to the Sink.
type Option func(*Sink)

// WithBufferSize bounds the in-memory feedback buffer.
func WithBufferSize(size int) Option {
	return func(s *Sink) {
		if size > 0 {
			s.bufferSize = size
		}
	}
}

// WithDedupe enables or disables duplicate-message suppression.
func WithDedupe(enabled bool) Option {
	return func(s *Sink) {
		s.dedupe = enabled
	}
}

// WithMaxSeenSize bounds the duplicate-suppression set.
func WithMaxSeenSize(size int) Option {
	return func(s *Sink) {
		if size > 0 {
			s.maxSeen = size
		}
	}
}

// WithLogger sets a custom logger for the sink.
func WithLogger(log logger.Logger) Option {
	return func(s *Sink) {
		if log != nil {
			s.log = log
		}
	}
}
