package main

import (
	"flag"
	"fmt"
	"os"

	"termtools/internal/csvrename"
	"termtools/internal/styles"
)

var applyFlag = flag.Bool("apply", false, "perform the renames instead of showing them")
var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `csvmv - rename files according to a CSV plan

USAGE:
  csvmv [options] <plan.csv>

The CSV needs a header with a source column (from/old/source/...) and
a destination column (to/new/dest/...); header names are matched
loosely. The default is a dry run: the plan is validated and printed,
nothing is touched until -apply.

OPTIONS:
`

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return 0
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, styles.ERROR("usage: csvmv [options] <plan.csv>"))
		return 1
	}

	plan, err := csvrename.ReadPlan(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}

	fmt.Println(styles.MUTED(fmt.Sprintf("columns: %s -> %s", plan.FromColumn, plan.ToColumn)))

	if problems := plan.Problems(); len(problems) > 0 {
		for _, problem := range problems {
			fmt.Fprintln(os.Stderr, styles.ERROR(problem))
		}
		return 1
	}

	for _, r := range plan.Renames {
		fmt.Printf("%s -> %s\n", r.From, styles.COMMAND(r.To))
	}

	if !*applyFlag {
		fmt.Println(styles.INFO(fmt.Sprintf("Dry run: %d renames planned. Use -apply to perform them.", len(plan.Renames))))
		return 0
	}

	n, err := plan.Apply()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("stopped after %d renames: %v", n, err)))
		return 1
	}

	fmt.Println(styles.INFO(fmt.Sprintf("Renamed %d files.", n)))
	return 0
}
