// Package timediff parses loosely formatted timestamps and describes
// the distance between two of them.
package timediff

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// layouts are tried in order. Clock-only values get the reference date.
var layouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04",
}

// Parse turns a timestamp argument into a time.Time. Bare integers are
// unix seconds; everything else is tried against the known layouts in
// the local timezone. A clock-only value like "15:04" lands on the
// reference day.
func Parse(s string, reference time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, reference.Location())
		if err != nil {
			continue
		}
		if layout == "15:04" {
			t = time.Date(reference.Year(), reference.Month(), reference.Day(),
				t.Hour(), t.Minute(), 0, 0, reference.Location())
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Diff is the distance between When and a reference instant Than.
type Diff struct {
	When time.Time
	Than time.Time
}

func Between(when, than time.Time) Diff {
	return Diff{When: when, Than: than}
}

// Exact returns the absolute difference in time.Duration notation,
// truncated to whole seconds.
func (d Diff) Exact() string {
	dur := d.Than.Sub(d.When)
	if dur < 0 {
		dur = -dur
	}
	return dur.Truncate(time.Second).String()
}

// Humanized phrases the difference relative to Than, e.g. "3 days ago"
// or "2 hours from now".
func (d Diff) Humanized() string {
	return humanize.RelTime(d.When, d.Than, "ago", "from now")
}
