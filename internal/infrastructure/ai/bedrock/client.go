// Package bedrock provides an Amazon Bedrock runtime based AI client.
package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tesso57/summarize/internal/application/usecase"
	"github.com/tesso57/summarize/internal/domain/generation"
)

var _ usecase.TextGenerator = Client{}

const defaultRegion = "us-east-1"

// Config controls how the Bedrock runtime client is built.
type Config struct {
	Region   string
	Endpoint string
	ModelID  string
}

// Invoker is the subset of the Bedrock runtime API used by Client.
type Invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Client generates text through Bedrock InvokeModel.
type Client struct {
	config   Config
	sampling generation.SamplingParameters
	invoker  Invoker
}

// NewClient creates a Bedrock client from the default AWS credential chain.
// Retries are disabled so each Generate call issues exactly one request.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	normalized := normalizeConfig(cfg)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(normalized.Region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		return Client{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	runtime := bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		if normalized.Endpoint != "" {
			o.BaseEndpoint = aws.String(normalized.Endpoint)
		}
	})
	return NewClientWithInvoker(normalized, runtime), nil
}

// NewClientWithInvoker creates a client with a custom invoker for tests.
func NewClientWithInvoker(cfg Config, invoker Invoker) Client {
	return Client{
		config:   normalizeConfig(cfg),
		sampling: generation.DefaultSampling(),
		invoker:  invoker,
	}
}

// ModelID reports the model requests are sent to.
func (c Client) ModelID() string {
	return c.config.ModelID
}

// Generate sends prompt to the model and returns the first generated text.
func (c Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.invoker == nil {
		return "", errors.New("bedrock runtime is not configured")
	}

	body, err := encodeRequest(prompt, c.sampling)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	out, err := c.invoker.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.config.ModelID),
		ContentType: aws.String(generation.ContentTypeJSON),
		Accept:      aws.String(generation.ContentTypeJSON),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke model failed: %w", err)
	}
	if out == nil {
		return "", errors.New("bedrock invoke model returned no output")
	}
	return decodeResponse(out.Body)
}

func normalizeConfig(cfg Config) Config {
	normalized := cfg
	normalized.Region = strings.TrimSpace(normalized.Region)
	normalized.Endpoint = strings.TrimSpace(normalized.Endpoint)
	if normalized.Region == "" {
		normalized.Region = defaultRegion
	}
	if strings.TrimSpace(normalized.ModelID) == "" {
		normalized.ModelID = generation.ModelID
	}
	return normalized
}

type cohereRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	P           float64 `json:"p"`
	K           int     `json:"k"`
	MaxTokens   int     `json:"max_tokens"`
}

type cohereResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
}

func encodeRequest(prompt string, params generation.SamplingParameters) ([]byte, error) {
	return json.Marshal(cohereRequest{
		Prompt:      prompt,
		Temperature: params.Temperature,
		P:           params.P,
		K:           params.K,
		MaxTokens:   params.MaxTokens,
	})
}

func decodeResponse(body []byte) (string, error) {
	var resp cohereResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse model response: %w", err)
	}
	if len(resp.Generations) == 0 {
		return "", generation.ErrNoGenerations
	}
	return resp.Generations[0].Text, nil
}
