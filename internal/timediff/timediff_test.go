package timediff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func TestParse(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, err := Parse("2025-06-14T08:30:00Z", reference)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 14, 8, 30, 0, 0, time.UTC), got.UTC())
	})

	t.Run("date and time", func(t *testing.T) {
		got, err := Parse("2025-06-14 08:30:00", reference)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 14, 8, 30, 0, 0, time.Local), got)
	})

	t.Run("date only", func(t *testing.T) {
		got, err := Parse("2025-06-14", reference)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local), got)
	})

	t.Run("clock only lands on reference day", func(t *testing.T) {
		got, err := Parse("08:30", reference)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 8, 30, 0, 0, time.Local), got)
	})

	t.Run("unix seconds", func(t *testing.T) {
		got, err := Parse("1750000000", reference)
		require.NoError(t, err)
		assert.Equal(t, int64(1750000000), got.Unix())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Parse("next tuesday-ish", reference)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "next tuesday-ish")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse("   ", reference)
		assert.Error(t, err)
	})
}

func TestDiff_Exact(t *testing.T) {
	t.Run("past", func(t *testing.T) {
		d := Between(reference.Add(-(72*time.Hour + 15*time.Minute + 4*time.Second)), reference)
		assert.Equal(t, "72h15m4s", d.Exact())
	})

	t.Run("future has same magnitude", func(t *testing.T) {
		d := Between(reference.Add(90*time.Minute), reference)
		assert.Equal(t, "1h30m0s", d.Exact())
	})

	t.Run("subsecond truncated", func(t *testing.T) {
		d := Between(reference.Add(-1500*time.Millisecond), reference)
		assert.Equal(t, "1s", d.Exact())
	})
}

func TestDiff_Humanized(t *testing.T) {
	t.Run("past", func(t *testing.T) {
		d := Between(reference.Add(-72*time.Hour), reference)
		assert.Equal(t, "3 days ago", d.Humanized())
	})

	t.Run("future", func(t *testing.T) {
		d := Between(reference.Add(2*time.Hour), reference)
		assert.Equal(t, "2 hours from now", d.Humanized())
	})
}
