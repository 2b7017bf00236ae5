// Command summarize-lambda is the text summarization function entry point.
package main

import (
	"context"
	"log/slog"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/tesso57/summarize/internal/application/usecase"
	"github.com/tesso57/summarize/internal/infrastructure/ai/bedrock"
	"github.com/tesso57/summarize/internal/infrastructure/config"
	"github.com/tesso57/summarize/internal/infrastructure/logging"
	"github.com/tesso57/summarize/internal/presentation/lambda"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Close() }()
	slog.SetDefault(logger.Logger)

	// Built once per execution environment and shared by every invocation.
	client, err := bedrock.NewClient(ctx, bedrock.Config{
		Region:   cfg.Bedrock.Region,
		Endpoint: cfg.Bedrock.Endpoint,
	})
	if err != nil {
		logger.Error("failed to create bedrock client", "error", err)
		os.Exit(1)
	}
	logger.Info("bedrock client ready", "region", cfg.Bedrock.Region, "model", client.ModelID())

	handler := lambda.NewHandler(usecase.NewGenerationService(client, logger.Logger))
	awslambda.Start(handler.Handle)
}
