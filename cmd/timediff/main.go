package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"termtools/internal/styles"
	"termtools/internal/timediff"
)

var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `timediff - how far apart are two points in time

USAGE:
  timediff <when> [<than>]

Prints the difference between <when> and <than> (default: now), both as
a phrase and as an exact duration. Accepted formats: RFC3339,
"2006-01-02 15:04:05", "2006-01-02", "15:04", unix seconds.

EXAMPLES:
  timediff 2025-01-01
  timediff 09:15 17:30
  timediff 1750000000 "2025-06-15 18:00:00"

OPTIONS:
`

func main() {
	flag.Parse()

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, styles.ERROR("usage: timediff <when> [<than>]"))
		os.Exit(1)
	}

	now := time.Now()

	when, err := timediff.Parse(args[0], now)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}

	than := now
	if len(args) == 2 {
		than, err = timediff.Parse(args[1], now)
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
			os.Exit(1)
		}
	}

	d := timediff.Between(when, than)
	fmt.Printf("%s %s\n", d.Humanized(), styles.MUTED("("+d.Exact()+")"))
}
