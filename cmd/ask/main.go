package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"termtools/internal/action"
	"termtools/internal/config"
	"termtools/internal/core"
	"termtools/internal/llm"
	"termtools/internal/logging"
	"termtools/internal/styles"
	"termtools/internal/synth"
)

var modelFlag = flag.String("m", "", "override the configured model name")
var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `ask - turn a plain-language request into a shell command

USAGE:
  ask [options] <request...>

All arguments are joined into one request and sent to a local language
model. The proposed command is displayed first; nothing runs until you
explicitly choose to run it.

EXAMPLES:
  ask list the five largest files here
  ask "kill whatever is listening on port 8080"

OPTIONS:
`

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return 0
	}

	cfg, err := config.Load(core.ConfigFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}
	if *modelFlag != "" {
		cfg.Model.Name = *modelFlag
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		// A broken log file never blocks the tool itself.
		logger = zap.NewNop()
	}
	defer logger.Sync()

	ctx := context.Background()
	request := strings.Join(flag.Args(), " ")

	runner, err := llm.NewRunner(cfg.Model, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}

	logger.Info("ask invocation", zap.String("request", request), zap.String("model", cfg.Model.Name))

	command, err := synth.New(runner, logger).Synthesize(ctx, request)
	if err != nil {
		return reportSynthesisError(err)
	}

	return confirm(ctx, os.Stdin, command, logger)
}

// confirm displays the proposed command, reads the user's decision from
// in, and carries it out. The return value is the tool's exit code; a
// command that runs and fails is reported without failing ask itself.
func confirm(ctx context.Context, in io.Reader, command string, logger *zap.Logger) int {
	fmt.Println(styles.COMMAND(command))

	if err := action.CheckSyntax(command); err != nil {
		fmt.Fprintln(os.Stderr, styles.WARNING("Warning: the proposed command does not parse as shell."))
		logger.Warn("proposed command failed syntax check", zap.String("command", command), zap.Error(err))
	}

	fmt.Print(styles.QUESTION("Run, copy, or cancel? [r/c/N] "))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		// EOF on stdin counts as declining.
		fmt.Println()
	}

	switch action.ParseDecision(line) {
	case action.Run:
		code, err := action.RunInShell(ctx, action.LoginShell(), command, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
			return 1
		}
		if code != 0 {
			fmt.Println(styles.MUTED(fmt.Sprintf("Command exited with status %d.", code)))
		}
		return 0

	case action.Copy:
		if err := action.CopyText(command); err != nil {
			fmt.Fprintln(os.Stderr, styles.WARNING("Clipboard unavailable; command was not copied."))
			logger.Warn("clipboard copy failed", zap.Error(err))
			return 0
		}
		fmt.Println(styles.INFO("Copied to clipboard."))
		return 0

	default:
		fmt.Println(styles.MUTED("Cancelled."))
		return 0
	}
}

func reportSynthesisError(err error) int {
	var parseErr *synth.ParseError

	switch {
	case errors.Is(err, synth.ErrEmptyRequest):
		fmt.Fprintln(os.Stderr, styles.ERROR("usage: ask <request...>"))
		fmt.Fprintln(os.Stderr, "Run `ask -h` for details.")

	case errors.As(err, &parseErr):
		fmt.Fprintln(os.Stderr, styles.ERROR("Could not extract a command from the model's response."))
		fmt.Fprintln(os.Stderr, "Raw response follows:")
		fmt.Fprintln(os.Stderr, parseErr.Raw)

	case errors.Is(err, llm.ErrLaunch):
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		fmt.Fprintln(os.Stderr, "Is the model runtime installed and running?")

	default:
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
	}

	return 1
}
