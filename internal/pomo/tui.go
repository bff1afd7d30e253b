package pomo

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	clockStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tuiModel drives the interactive timer.
type tuiModel struct {
	total   time.Duration
	start   time.Time
	elapsed time.Duration
	bar     progress.Model
	done    bool
}

func newTUIModel(total time.Duration, width int) tuiModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = width
	return tuiModel{
		total: total,
		start: time.Now(),
		bar:   bar,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tickCmd()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.elapsed = time.Since(m.start)
			return m, tea.Quit
		}

	case tickMsg:
		m.elapsed = time.Since(m.start)
		if m.elapsed >= m.total {
			m.elapsed = m.total
			m.done = true
			return m, tea.Quit
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m tuiModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s  ✅ Done!\n", m.bar.ViewAs(1), clockStyle.Render("00:00"))
	}

	return fmt.Sprintf("%s %s  %s\n",
		m.bar.ViewAs(Ratio(m.elapsed, m.total)),
		clockStyle.Render(FormatRemaining(m.total-m.elapsed)),
		hintStyle.Render("q to cancel"),
	)
}

// RunTUI runs the timer as a bubbletea program. It returns the elapsed
// time and whether the timer ran to completion.
func RunTUI(total time.Duration, width int) (time.Duration, bool, error) {
	final, err := tea.NewProgram(newTUIModel(total, width)).Run()
	if err != nil {
		return 0, false, err
	}

	m := final.(tuiModel)
	return m.elapsed, m.done, nil
}
