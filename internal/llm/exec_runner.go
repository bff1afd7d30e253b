package llm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"termtools/internal/config"
)

// ExecRunner runs the model by spawning the runtime CLI, passing the prompt
// as a single argument: `<command> run <model> <prompt>`. That is the shape
// ollama expects; any runtime with the same surface works.
type ExecRunner struct {
	command string
	model   string
	logger  *zap.Logger
}

func NewExecRunner(cfg config.ModelConfig, logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{
		command: cfg.Command,
		model:   cfg.Name,
		logger:  logger,
	}
}

func (r *ExecRunner) Complete(ctx context.Context, prompt string) (string, error) {
	if _, err := exec.LookPath(r.command); err != nil {
		return "", fmt.Errorf("%w: %s not found in PATH", ErrLaunch, r.command)
	}

	cmd := exec.CommandContext(ctx, r.command, "run", r.model, prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w: starting %s: %v", ErrLaunch, r.command, err)
	}

	err := cmd.Wait()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		// Once the runtime is up, a bad exit is its problem, not ours.
		// Whatever made it to stdout still goes to the parser.
		r.logger.Warn(
			"model runtime exited abnormally",
			zap.String("command", r.command),
			zap.String("model", r.model),
			zap.Error(err),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.String(), nil
}
