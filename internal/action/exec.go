package action

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// LoginShell returns the user's shell from $SHELL, falling back to
// /bin/sh when unset.
func LoginShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// RunInShell executes command through an interactive instance of the
// given shell, so user aliases and rc-file PATH changes apply. The
// terminal's standard streams are inherited. The child's exit status
// is returned for reporting; a non-zero status is not an error here.
// An error means the shell itself could not be started.
func RunInShell(ctx context.Context, shell, command string, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cmd := exec.CommandContext(ctx, shell, "-i", "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info("running command", zap.String("shell", shell), zap.String("command", command))

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		logger.Info("command exited with non-zero status", zap.Int("exitCode", code))
		return code, nil
	}

	return -1, fmt.Errorf("failed to start %s: %w", shell, err)
}
