// Package llm invokes the local language-model runtime. Two runners share
// one contract: ExecRunner spawns the runtime as a subprocess (the ollama
// CLI by default), OpenAIRunner talks to an OpenAI-compatible HTTP endpoint
// such as ollama's /v1. Which one is used comes from the model section of
// the config file.
package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"termtools/internal/config"
)

// ErrLaunch indicates the model runtime could not be invoked at all: the
// runtime binary is missing, the process would not start, or the HTTP
// endpoint is unreachable. A runtime that answered with something unusable
// is not a launch failure; that is the caller's parse failure to report.
var ErrLaunch = errors.New("model runtime unavailable")

// Runner produces a completion for a prompt. The call blocks until the
// runtime answers; cancellation comes from ctx only.
type Runner interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewRunner builds the runner selected by the model config.
func NewRunner(cfg config.ModelConfig, logger *zap.Logger) (Runner, error) {
	switch cfg.Runner {
	case "", "exec":
		return NewExecRunner(cfg, logger), nil
	case "openai":
		return NewOpenAIRunner(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown model runner %q (want exec or openai)", cfg.Runner)
	}
}
