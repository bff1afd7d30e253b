// Package pomo implements a terminal pomodoro timer with a sqlite
// session log.
package pomo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	DefaultMinutes  = 25
	DefaultBarWidth = 30

	tick = 200 * time.Millisecond
)

// Ratio returns the completed fraction of the timer, clamped to [0, 1].
// A zero-length timer counts as complete.
func Ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	r := float64(elapsed) / float64(total)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// RenderBar draws the fill for a completion ratio, e.g. "████░░░░".
func RenderBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(float64(width) * ratio)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatRemaining renders a duration as MM:SS, rounded down to whole
// seconds. Minutes can exceed two digits for long timers.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Line is the single status line redrawn in place: "[bar] MM:SS".
func Line(elapsed, total time.Duration, width int) string {
	return fmt.Sprintf("[%s] %s", RenderBar(Ratio(elapsed, total), width), FormatRemaining(total-elapsed))
}

// RunPlain drives the timer with carriage-return redraws on w, for dumb
// terminals and piped output. It returns the elapsed time and whether
// the timer ran to completion; false means ctx was cancelled first.
func RunPlain(ctx context.Context, w io.Writer, total time.Duration, width int) (time.Duration, bool) {
	start := time.Now()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		elapsed := time.Since(start).Truncate(time.Second)
		if elapsed > total {
			break
		}

		fmt.Fprintf(w, "\r%s", Line(elapsed, total, width))

		select {
		case <-ctx.Done():
			fmt.Fprintln(w, "\nTimer cancelled.")
			return time.Since(start), false
		case <-ticker.C:
		}
	}

	fmt.Fprintf(w, "\r[%s] 00:00  ✅ Done!\n", RenderBar(1, width))
	return total, true
}
