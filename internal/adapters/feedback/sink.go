// Package feedback persists user feedback submissions.
//
// Submissions are accepted on the request path without blocking: a bounded
// channel buffers messages and a single consumer goroutine appends them to a
// CSV file. One writer keeps the append ordering deterministic without file
// locking.
package feedback

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
	"github.com/RAloysia/course-recommendation-app/pkg/logger"
	"github.com/RAloysia/course-recommendation-app/pkg/metrics"

	"github.com/google/uuid"
)

// Default sink configuration constants.
const (
	defaultBufferSize    = 1024
	defaultMaxSeenSize   = 10000
	feedbackFilePermBits = 0o600
)

// Sink accepts feedback messages and persists them asynchronously.
type Sink struct {
	path       string
	bufferSize int
	dedupe     bool
	maxSeen    int
	log        logger.Logger

	mu     sync.Mutex
	seen   map[string]bool
	queue  chan model.Feedback
	done   chan struct{}
	closed bool
}

// NewSink creates a feedback sink and starts its writer goroutine.
func NewSink(ctx context.Context, path string, opts ...Option) (*Sink, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}

	s := &Sink{
		path:       path,
		bufferSize: defaultBufferSize,
		dedupe:     true,
		maxSeen:    defaultMaxSeenSize,
		log:        logger.Get(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	s.seen = make(map[string]bool)
	s.queue = make(chan model.Feedback, s.bufferSize)
	s.done = make(chan struct{})

	go s.run(ctx)

	return s, nil
}

// Submit enqueues a feedback message for persistence.
// Returns false on empty message, duplicate (when dedupe is on), closed
// sink, or backpressure; the caller maps that to a client response.
func (s *Sink) Submit(_ context.Context, message string) bool {
	message = strings.TrimSpace(message)
	if message == "" {
		return false
	}

	// The lock is held across the send so Close cannot close the queue
	// between the closed check and the enqueue. The send is non-blocking,
	// so the critical section stays short.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		metrics.RecordFeedbackDropped()
		return false
	}
	if s.dedupe && s.seen[message] {
		metrics.RecordFeedbackDuplicate()
		return false
	}

	entry := model.Feedback{ID: uuid.NewString(), Message: message}
	select {
	case s.queue <- entry:
		// Mark seen only once the message is actually buffered, so a
		// backpressure drop stays retryable.
		if s.dedupe {
			// Bound the seen set; resetting is acceptable, the worst case
			// is one duplicate row per reset.
			if len(s.seen) >= s.maxSeen {
				s.seen = make(map[string]bool)
			}
			s.seen[message] = true
		}
		metrics.RecordFeedbackSubmitted()
		return true
	default:
		metrics.RecordFeedbackDropped()
		return false
	}
}

// Close stops accepting submissions, drains the buffer to disk, and waits
// for the writer to finish.
func (s *Sink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	// Closing under the lock excludes in-flight Submit sends.
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	return nil
}

// Len returns the number of buffered, not yet persisted messages.
func (s *Sink) Len() int {
	return len(s.queue)
}

// run is the single writer goroutine. It opens the file lazily per entry
// batch and exits when the queue is closed and drained.
func (s *Sink) run(ctx context.Context) {
	defer close(s.done)

	for entry := range s.queue {
		if err := s.append(entry); err != nil {
			s.log.Error(ctx, "failed to persist feedback",
				logger.String("id", entry.ID), logger.Error(err))
			metrics.RecordErrorByComponent("feedback", "write_failed")
			continue
		}
		metrics.RecordFeedbackWritten()
	}
}

// append writes one CSV row: id, RFC3339 timestamp, message.
func (s *Sink) append(entry model.Feedback) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, feedbackFilePermBits)
	if err != nil {
		return fmt.Errorf("open feedback file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{entry.ID, time.Now().UTC().Format(time.RFC3339), entry.Message}); err != nil {
		return fmt.Errorf("write feedback row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush feedback row: %w", err)
	}
	return nil
}
