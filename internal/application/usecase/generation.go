// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tesso57/summarize/internal/domain/generation"
)

// TextGenerator abstracts plain prompt -> text completion.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationService forwards a prompt to the model and wraps the result.
type GenerationService struct {
	Generator TextGenerator
	Logger    *slog.Logger
}

// NewGenerationService constructs a GenerationService.
func NewGenerationService(generator TextGenerator, logger *slog.Logger) *GenerationService {
	return &GenerationService{
		Generator: generator,
		Logger:    logger,
	}
}

// Generate runs one model invocation for req.
func (s *GenerationService) Generate(ctx context.Context, req generation.InvocationRequest) (generation.Response, error) {
	if s == nil || s.Generator == nil {
		return generation.Response{}, errors.New("text generator is not configured")
	}
	if err := req.Validate(); err != nil {
		return generation.Response{}, err
	}

	text, err := s.Generator.Generate(ctx, req.Prompt)
	if err != nil {
		return generation.Response{}, fmt.Errorf("generate text: %w", err)
	}
	s.logger().InfoContext(ctx, "generated text", "text", text)

	resp, err := generation.NewResponse(text)
	if err != nil {
		return generation.Response{}, fmt.Errorf("encode response body: %w", err)
	}
	return resp, nil
}

func (s *GenerationService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
