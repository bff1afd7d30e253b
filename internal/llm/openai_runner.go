package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"termtools/internal/config"
)

// OpenAIRunner talks to an OpenAI-compatible chat completions endpoint.
// Pointing BaseURL at ollama's /v1 keeps everything local.
type OpenAIRunner struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

func NewOpenAIRunner(cfg config.ModelConfig, logger *zap.Logger) *OpenAIRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIRunner{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Name,
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

func (r *OpenAIRunner) Complete(ctx context.Context, prompt string) (string, error) {
	response, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: r.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	if len(response.Choices) == 0 {
		r.logger.Warn("model endpoint returned no choices", zap.String("model", r.model))
		return "", nil
	}

	return response.Choices[0].Message.Content, nil
}
