// Package lambda adapts invocation events to the generation service.
package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tesso57/summarize/internal/domain/generation"
)

// Service runs one generation for a typed request.
type Service interface {
	Generate(ctx context.Context, req generation.InvocationRequest) (generation.Response, error)
}

// Handler decodes invocation events and forwards them to Service.
type Handler struct {
	service Service
}

// NewHandler constructs a Handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type invocationEvent struct {
	Prompt *string `json:"prompt"`
}

// Handle is the function entry point. Every fault is returned to the
// platform, which reports it as a failed invocation.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (generation.Response, error) {
	if h == nil || h.service == nil {
		return generation.Response{}, errors.New("handler is not configured")
	}

	req, err := DecodeEvent(event)
	if err != nil {
		return generation.Response{}, err
	}
	return h.service.Generate(ctx, req)
}

// DecodeEvent parses a raw invocation event. A missing prompt key is
// reported as generation.ErrMissingPrompt.
func DecodeEvent(event json.RawMessage) (generation.InvocationRequest, error) {
	var in invocationEvent
	if err := json.Unmarshal(event, &in); err != nil {
		return generation.InvocationRequest{}, fmt.Errorf("invalid invocation event: %w", err)
	}
	if in.Prompt == nil {
		return generation.InvocationRequest{}, generation.ErrMissingPrompt
	}
	return generation.InvocationRequest{Prompt: *in.Prompt}, nil
}
