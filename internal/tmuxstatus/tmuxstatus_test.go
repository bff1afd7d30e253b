package tmuxstatus

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAverage(t *testing.T) {
	t.Run("parses proc format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loadavg")
		require.NoError(t, os.WriteFile(path, []byte("0.42 0.35 0.28 2/1234 56789\n"), 0644))

		got, err := LoadAverage(path)
		require.NoError(t, err)
		assert.Equal(t, "0.42 0.35 0.28", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadAverage(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("malformed content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loadavg")
		require.NoError(t, os.WriteFile(path, []byte("0.42\n"), 0644))

		_, err := LoadAverage(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed")
	})
}

func TestClock(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "Sun 14:05", Clock(now))
}

func TestRender(t *testing.T) {
	segments := []Segment{
		{Text: "♪ Radiohead – Paranoid Android", Color: "cyan"},
		{Text: "0.42 0.35 0.28", Color: "yellow"},
		{Text: "Sun 14:05"},
	}

	t.Run("plain", func(t *testing.T) {
		got := Render(segments, false, 0)
		assert.Equal(t, "♪ Radiohead – Paranoid Android │ 0.42 0.35 0.28 │ Sun 14:05", got)
	})

	t.Run("tmux directives", func(t *testing.T) {
		got := Render(segments, true, 0)
		assert.Contains(t, got, "#[fg=cyan]♪ Radiohead – Paranoid Android#[default]")
		assert.Contains(t, got, "#[fg=yellow]0.42 0.35 0.28#[default]")
		// Uncolored segments get no directive.
		assert.Contains(t, got, " │ Sun 14:05")
		assert.NotContains(t, got, "#[fg=]")
	})

	t.Run("budget truncates the first segment", func(t *testing.T) {
		// Plain join is 30 + 3 + 14 + 3 + 9 = 59 cells; a budget of 49
		// takes 10 cells out of the track.
		got := Render(segments, false, 49)
		assert.Equal(t, "♪ Radiohead – Paran… │ 0.42 0.35 0.28 │ Sun 14:05", got)
	})

	t.Run("budget drops segments that cannot fit", func(t *testing.T) {
		got := Render(segments, false, 26)
		assert.Equal(t, "0.42 0.35 0.28 │ Sun 14:05", got)
	})

	t.Run("escape sequences cost no budget", func(t *testing.T) {
		// Same 30 printable cells as the plain track; the escapes must
		// not count against the budget of 42 (30 + 3 + 9).
		styled := "\x1b[36m♪ Radiohead – Paranoid Android\x1b[0m"
		got := Render([]Segment{
			{Text: styled},
			{Text: "Sun 14:05"},
		}, false, 42)
		assert.Equal(t, styled+" │ Sun 14:05", got)
	})

	t.Run("single segment hard truncated", func(t *testing.T) {
		got := Render([]Segment{{Text: "abcdefghij"}}, false, 5)
		assert.Equal(t, "abcd…", got)
	})

	t.Run("empty segments", func(t *testing.T) {
		assert.Equal(t, "", Render(nil, true, 20))
	})
}
