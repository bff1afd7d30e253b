// Package gitfold compresses git log --graph output by folding runs of
// commits that share the same graph prefix, so long straight stretches
// of a branch collapse to their endpoints.
package gitfold

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var (
	// hashPattern finds the abbreviated or full commit hash.
	hashPattern = regexp.MustCompile(`\b[0-9a-f]{7,40}\b`)
	// ansiPattern matches SGR colour sequences.
	ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")
)

// StripANSI removes colour sequences. Folding compares stripped text
// but always prints the original lines.
func StripANSI(line string) string {
	return ansiPattern.ReplaceAllString(line, "")
}

// GraphPrefix returns the graph art to the left of the commit hash.
// ok is false for pure connector lines like "|/" or "| |", which carry
// no commit.
func GraphPrefix(line string) (prefix string, ok bool) {
	clean := StripANSI(line)
	loc := hashPattern.FindStringIndex(clean)
	if loc == nil {
		return "", false
	}
	return clean[:loc[0]], true
}

// Fold collapses each run of three or more commits sharing a graph
// prefix to its first and last lines with one marker line between
// them: "<prefix>…" by default, or an indented "⋮ (hidden N commits)"
// when showGap is set. Connector lines pass through and end the
// current run.
func Fold(lines []string, showGap bool) []string {
	var out []string
	var run []string
	var runPrefix string

	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, run[0])
		if len(run) > 2 {
			out = append(out, marker(runPrefix, len(run)-2, showGap))
		}
		if len(run) > 1 {
			out = append(out, run[len(run)-1])
		}
		run = nil
	}

	for _, line := range lines {
		prefix, ok := GraphPrefix(line)
		if !ok {
			flush()
			out = append(out, line)
			continue
		}

		if len(run) > 0 && prefix == runPrefix {
			run = append(run, line)
			continue
		}

		flush()
		run = []string{line}
		runPrefix = prefix
	}
	flush()

	return out
}

func marker(prefix string, hidden int, showGap bool) string {
	if showGap {
		indent := strings.Repeat(" ", len(prefix))
		return fmt.Sprintf("%s  ⋮  (hidden %d commits)", indent, hidden)
	}
	return prefix + "…"
}

// Log runs git log --graph with the standard flags plus any extra
// arguments and returns its output lines, colours included.
func Log(ctx context.Context, extra []string) ([]string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git not found in PATH")
	}

	args := append([]string{"log", "--graph", "--oneline", "--decorate", "--all", "--color=always"}, extra...)
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return nil, fmt.Errorf("git log failed: %w", err)
		}
		return nil, fmt.Errorf("git log failed: %s", detail)
	}

	text := strings.TrimRight(stdout.String(), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
