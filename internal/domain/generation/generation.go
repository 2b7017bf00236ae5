// Package generation defines the text generation request and response models.
package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ModelID is the Bedrock model every invocation is sent to.
const ModelID = "cohere.command-light-text-v14"

// ContentTypeJSON is used for both request content type and accepted response type.
const ContentTypeJSON = "application/json"

var (
	// ErrMissingPrompt is returned when the invocation event carries no prompt.
	ErrMissingPrompt = errors.New("prompt is missing")
	// ErrNoGenerations is returned when the model response has no candidates.
	ErrNoGenerations = errors.New("model returned no generations")
)

// InvocationRequest is the input delivered by the hosting platform.
type InvocationRequest struct {
	Prompt string `json:"prompt"`
}

// Validate checks that the request can be forwarded to the model.
func (r InvocationRequest) Validate() error {
	if r.Prompt == "" {
		return ErrMissingPrompt
	}
	return nil
}

// SamplingParameters controls how the model samples tokens.
type SamplingParameters struct {
	Temperature float64
	P           float64
	K           int
	MaxTokens   int
}

// DefaultSampling returns the fixed parameters sent with every request.
func DefaultSampling() SamplingParameters {
	return SamplingParameters{
		Temperature: 0.9,
		P:           0.75,
		K:           0,
		MaxTokens:   100,
	}
}

// Response is the status-coded envelope returned to the platform.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewResponse wraps generated text in a 200 envelope whose body is the
// JSON encoding of text.
func NewResponse(text string) (Response, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode: http.StatusOK,
		Body:       strings.TrimSuffix(buf.String(), "\n"),
	}, nil
}
