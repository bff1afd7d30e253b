// Package csvrename reads a rename plan from a CSV file, validates it,
// and applies it. The CSV only needs a column that means "from" and
// one that means "to"; headers are matched loosely.
package csvrename

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

var (
	sourceAliases = []string{"from", "old", "source", "src", "original", "current"}
	destAliases   = []string{"to", "new", "dest", "destination", "target", "renamed"}
)

type Rename struct {
	From string
	To   string
}

// Plan is a parsed rename plan. FromColumn and ToColumn record which
// headers were matched, for display.
type Plan struct {
	Renames    []Rename
	FromColumn string
	ToColumn   string
}

// ReadPlan parses the CSV at path. The first row must be a header
// containing a recognizable source column and destination column.
func ReadPlan(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	header := records[0]
	fromIdx := findColumn(header, sourceAliases)
	if fromIdx < 0 {
		return nil, fmt.Errorf("no source column in header %v (want something like %q)", header, sourceAliases[0])
	}
	toIdx := findColumn(header, destAliases)
	if toIdx < 0 || toIdx == fromIdx {
		return nil, fmt.Errorf("no destination column in header %v (want something like %q)", header, destAliases[0])
	}

	plan := &Plan{
		FromColumn: header[fromIdx],
		ToColumn:   header[toIdx],
	}
	for _, record := range records[1:] {
		plan.Renames = append(plan.Renames, Rename{
			From: strings.TrimSpace(record[fromIdx]),
			To:   strings.TrimSpace(record[toIdx]),
		})
	}

	return plan, nil
}

// findColumn locates the header cell matching one of the aliases:
// exact match first, then the best fuzzy hit (so "Source Path" and
// "new_name" are found too).
func findColumn(header []string, aliases []string) int {
	normalized := lo.Map(header, func(h string, _ int) string {
		return strings.ToLower(strings.TrimSpace(h))
	})

	for i, h := range normalized {
		if lo.Contains(aliases, h) {
			return i
		}
	}

	best, bestScore := -1, 0
	for i, h := range normalized {
		for _, alias := range aliases {
			matches := fuzzy.Find(alias, []string{h})
			if len(matches) == 1 && (best < 0 || matches[0].Score > bestScore) {
				best, bestScore = i, matches[0].Score
			}
		}
	}
	return best
}

// Problems validates the plan against the filesystem. An empty result
// means the plan is safe to apply.
func (p *Plan) Problems() []string {
	var problems []string

	if len(p.Renames) == 0 {
		problems = append(problems, "plan has no rows")
	}

	for _, r := range p.Renames {
		switch {
		case r.From == "" || r.To == "":
			problems = append(problems, fmt.Sprintf("incomplete row: %q -> %q", r.From, r.To))
		case r.From == r.To:
			problems = append(problems, fmt.Sprintf("%s: source and destination are the same", r.From))
		default:
			if _, err := os.Stat(r.From); err != nil {
				problems = append(problems, fmt.Sprintf("%s: source does not exist", r.From))
			}
			if _, err := os.Stat(r.To); err == nil {
				problems = append(problems, fmt.Sprintf("%s: destination already exists", r.To))
			}
		}
	}

	destinations := lo.Map(p.Renames, func(r Rename, _ int) string { return r.To })
	for _, dup := range lo.FindDuplicates(destinations) {
		if dup != "" {
			problems = append(problems, fmt.Sprintf("%s: duplicate destination", dup))
		}
	}

	return problems
}

// Apply performs the renames in order, stopping at the first failure.
// It returns how many renames happened.
func (p *Plan) Apply() (int, error) {
	for i, r := range p.Renames {
		if err := os.Rename(r.From, r.To); err != nil {
			return i, fmt.Errorf("renaming %s: %w", r.From, err)
		}
	}
	return len(p.Renames), nil
}
