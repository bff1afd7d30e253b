package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"termtools/internal/llm"
)

var (
	locationStyle  = lipgloss.NewStyle().Bold(true)
	conditionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	detailStyle    = lipgloss.NewStyle().Faint(true)
)

// Format renders the report as a compact block wrapped to width.
func Format(r *Report, width int) string {
	var b strings.Builder

	if r.Location != "" {
		b.WriteString(locationStyle.Render(r.Location))
		b.WriteString("\n")
	}

	current := fmt.Sprintf("%s, %s°C", r.Condition, r.TempC)
	if r.FeelsLikeC != "" && r.FeelsLikeC != r.TempC {
		current += fmt.Sprintf(" (feels like %s°C)", r.FeelsLikeC)
	}
	b.WriteString(conditionStyle.Render(current))
	b.WriteString("\n")

	b.WriteString(detailStyle.Render(
		fmt.Sprintf("humidity %s%%, wind %s km/h %s", r.Humidity, r.WindKmph, r.WindDir)))
	b.WriteString("\n")

	if len(r.Days) > 0 {
		b.WriteString("\n")
		for _, day := range r.Days {
			b.WriteString(fmt.Sprintf("%s  %s to %s°C  %s\n",
				day.Date.Format("Mon"), day.MinC, day.MaxC, day.Condition))
		}
	}

	if width > 0 {
		return wordwrap.String(b.String(), width)
	}
	return b.String()
}

// commentaryTemplate gets a plain-text summary; markdown comes back.
const commentaryTemplate = `You are a dry, practical weather commentator.
Here is the current report:

%s

Write one short paragraph (2-3 sentences) of practical commentary:
what to wear, whether to bike, anything notable. Markdown is fine,
headings are not.`

// Commentary asks the model for a short remark on the report and
// renders the answer as terminal markdown. The caller decides whether
// a failure matters; the report itself never depends on this.
func Commentary(ctx context.Context, runner llm.Runner, r *Report) (string, error) {
	raw, err := runner.Complete(ctx, fmt.Sprintf(commentaryTemplate, summary(r)))
	if err != nil {
		return "", err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("model returned no commentary")
	}

	rendered, err := glamour.Render(raw, "auto")
	if err != nil {
		// Unrendered markdown is still perfectly readable.
		return raw, nil
	}
	return rendered, nil
}

// summary flattens the report for the prompt.
func summary(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Location: %s\n", r.Location)
	fmt.Fprintf(&b, "Now: %s, %s C, feels like %s C, humidity %s%%, wind %s km/h %s\n",
		r.Condition, r.TempC, r.FeelsLikeC, r.Humidity, r.WindKmph, r.WindDir)
	for _, day := range r.Days {
		fmt.Fprintf(&b, "%s: %s to %s C, %s\n",
			day.Date.Format("2006-01-02"), day.MinC, day.MaxC, day.Condition)
	}
	return b.String()
}
