package styles

import (
	"os"

	"github.com/muesli/termenv"
)

// Terminal capability state is probed exactly once at startup and treated as
// read-only constants from then on.
var (
	stdout = termenv.NewOutput(os.Stdout)
	stderr = termenv.NewOutput(os.Stderr)

	ERROR = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("9")).
			String()
	}
	WARNING = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("11")).
			String()
	}
	COMMAND = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("10")).
			Bold().
			String()
	}
	QUESTION = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("11")).
			Bold().
			String()
	}
	INFO = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("12")).
			String()
	}
	MUTED = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("8")).
			String()
	}
)
