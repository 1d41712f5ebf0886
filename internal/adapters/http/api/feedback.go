// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Feedback size bound; anything longer is a client error.
const maxFeedbackLength = 4096

// FeedbackDependencies defines the interface for feedback submission.
type FeedbackDependencies interface {
	SubmitFeedback(ctx context.Context, message string) bool
}

// FeedbackHandler handles feedback submissions.
type FeedbackHandler struct {
	deps FeedbackDependencies
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(deps FeedbackDependencies) *FeedbackHandler {
	return &FeedbackHandler{deps: deps}
}

// feedbackRequest mirrors the OpenAPI schema for POST /feedback.
type feedbackRequest struct {
	Message string `json:"message"`
}

func (f feedbackRequest) validate() error {
	if strings.TrimSpace(f.Message) == "" {
		return errors.New("missing message")
	}
	if len(f.Message) > maxFeedbackLength {
		return errors.New("message too long")
	}
	return nil
}

type feedbackResponse struct {
	Status string `json:"status"`
}

// HandlePostFeedback handles POST /feedback requests.
func (h *FeedbackHandler) HandlePostFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	if !h.deps.SubmitFeedback(r.Context(), req.Message) {
		writeError(w, http.StatusTooManyRequests, "backpressure", ErrBackpressure)
		return
	}
	writeJSON(w, http.StatusAccepted, feedbackResponse{Status: "accepted"})
}
