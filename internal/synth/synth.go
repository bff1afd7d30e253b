// Package synth turns a plain-language request into a single proposed
// shell command by prompting a local language model and parsing its
// JSON answer. Synthesis only proposes; acting on the proposal is the
// caller's business.
package synth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"termtools/internal/llm"
)

// ErrEmptyRequest is returned when the request text is empty or
// whitespace-only. The model is never invoked in that case.
var ErrEmptyRequest = errors.New("empty request")

// ParseError reports that the model answered but no command could be
// extracted. Raw holds the full response for diagnosis.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "could not extract a command from the model response"
}

// promptTemplate instructs the model to answer with a single JSON
// object. Only the task text varies between invocations.
const promptTemplate = `You are a shell assistant.
You will be given a task described in plain language, enclosed in <task> tags.
You are asked to produce a single shell command that accomplishes the task.

# Instructions
* The command must be a valid, single-line POSIX shell command
* Prefer widely available tools over exotic ones
* Do not explain the command
* Do not wrap your response in a code fence

Respond with JSON in this format: {"cmd": "your command here"}

<task>%s</task>`

// Synthesizer maps request text to a proposed shell command.
type Synthesizer struct {
	runner llm.Runner
	logger *zap.Logger
}

func New(runner llm.Runner, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{
		runner: runner,
		logger: logger,
	}
}

// Synthesize produces a shell command for the given request text.
// It fails with ErrEmptyRequest before any model call when the request
// is blank, passes runner errors through unchanged, and fails with a
// *ParseError when the model's answer yields no usable command.
func (s *Synthesizer) Synthesize(ctx context.Context, request string) (string, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return "", ErrEmptyRequest
	}

	prompt := fmt.Sprintf(promptTemplate, request)
	s.logger.Debug("synthesis request", zap.String("request", request))

	response, err := s.runner.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	command, ok := extractCommand(response)
	if !ok {
		s.logger.Debug("no command in model response", zap.String("response", response))
		return "", &ParseError{Raw: response}
	}

	s.logger.Debug("synthesized command", zap.String("command", command))
	return command, nil
}
