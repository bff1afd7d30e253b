// Package tmuxstatus assembles a one-line fragment for tmux's
// status-right: current track, load average, clock. A status line must
// never fail, so unavailable segments are simply omitted.
package tmuxstatus

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"

	"termtools/internal/text"
)

const separator = " │ "

// ProcLoadAvg is where linux exposes the load averages.
const ProcLoadAvg = "/proc/loadavg"

// Segment is one piece of the fragment. Color is a tmux colour name
// and only matters when rendering for tmux.
type Segment struct {
	Text  string
	Color string
}

// LoadAverage reads the 1/5/15 minute load averages from procPath.
func LoadAverage(procPath string) (string, error) {
	data, err := os.ReadFile(procPath)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return "", fmt.Errorf("malformed loadavg %q", strings.TrimSpace(string(data)))
	}
	return strings.Join(fields[:3], " "), nil
}

// Clock renders the time the way a status line wants it.
func Clock(now time.Time) string {
	return now.Format("Mon 15:04")
}

// Render joins segments and applies the display-cell budget. With
// tmuxFormat, colored segments are wrapped in #[fg=...] directives,
// which tmux renders at zero width. Segment text that already carries
// ANSI escapes is measured by printable cells. A max of 0 means
// unlimited.
func Render(segments []Segment, tmuxFormat bool, max int) string {
	segments = fit(segments, max)

	parts := lo.Map(segments, func(s Segment, _ int) string {
		if tmuxFormat && s.Color != "" {
			return fmt.Sprintf("#[fg=%s]%s#[default]", s.Color, s.Text)
		}
		return s.Text
	})

	return strings.Join(parts, separator)
}

// fit trims segments to the budget. The first segment (the track, the
// only unbounded one) is truncated first; a segment that cannot absorb
// the whole excess is dropped and the next one pays the rest.
func fit(segments []Segment, max int) []Segment {
	if max <= 0 {
		return segments
	}

	fitted := make([]Segment, len(segments))
	copy(fitted, segments)

	for len(fitted) > 0 {
		total := width(fitted)
		if total <= max {
			break
		}

		excess := total - max
		first := text.Width(fitted[0].Text)
		if first > excess {
			fitted[0].Text = text.Truncate(fitted[0].Text, first-excess)
			break
		}
		fitted = fitted[1:]
	}

	return fitted
}

func width(segments []Segment) int {
	total := 0
	for i, s := range segments {
		if i > 0 {
			total += text.Width(separator)
		}
		total += text.Width(s.Text)
	}
	return total
}
