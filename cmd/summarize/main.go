// Command summarize invokes the summarization handler locally, the same
// way the POST /text-summarization route does once deployed.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/summarize/internal/application/settings"
	"github.com/tesso57/summarize/internal/application/usecase"
	"github.com/tesso57/summarize/internal/infrastructure/ai/bedrock"
	"github.com/tesso57/summarize/internal/infrastructure/config"
	"github.com/tesso57/summarize/internal/infrastructure/logging"
	"github.com/tesso57/summarize/internal/presentation/lambda"
)

type cli struct {
	Config kong.ConfigFlag `help:"YAML config file." env:"SUMMARIZE_CONFIG"`
	Event  string          `help:"Read the invocation event from a JSON file." type:"existingfile"`
	Prompt string          `arg:"" optional:"" help:"Prompt text. Read from stdin when neither a prompt nor --event is given."`

	Settings settings.Settings `embed:""`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("summarize"),
		kong.Description("Send a prompt to the Bedrock text summarization handler."),
		kong.Configuration(config.YAMLLoader),
		kong.UsageOnError(),
	)
	c.Settings = config.Normalize(c.Settings)

	logger, err := logging.New(c.Settings.Log, os.Stderr)
	kctx.FatalIfErrorf(err)
	defer func() { _ = logger.Close() }()

	ctx := context.Background()
	client, err := bedrock.NewClient(ctx, bedrock.Config{
		Region:   c.Settings.Bedrock.Region,
		Endpoint: c.Settings.Bedrock.Endpoint,
	})
	kctx.FatalIfErrorf(err)

	err = c.run(ctx, os.Stdin, os.Stdout, logger.Logger, client)
	if err != nil {
		logger.Error("invocation failed", "error", err)
	}
	kctx.FatalIfErrorf(err)
}

func (c *cli) run(ctx context.Context, stdin io.Reader, stdout io.Writer, logger *slog.Logger, gen usecase.TextGenerator) error {
	event, err := c.event(stdin)
	if err != nil {
		return err
	}

	handler := lambda.NewHandler(usecase.NewGenerationService(gen, logger))
	resp, err := handler.Handle(ctx, event)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func (c *cli) event(stdin io.Reader) (json.RawMessage, error) {
	if c.Event != "" && c.Prompt != "" {
		return nil, errors.New("pass either a prompt or --event, not both")
	}
	if c.Event != "" {
		data, err := os.ReadFile(c.Event)
		if err != nil {
			return nil, fmt.Errorf("failed to read event file: %w", err)
		}
		return data, nil
	}

	prompt := c.Prompt
	if prompt == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt from stdin: %w", err)
		}
		prompt = strings.TrimRight(string(data), "\r\n")
	}

	// Same shape as the API Gateway request template: {"prompt": ...}.
	return json.Marshal(map[string]string{"prompt": prompt})
}
