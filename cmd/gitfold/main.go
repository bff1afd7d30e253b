package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"termtools/internal/gitfold"
	"termtools/internal/styles"
)

var gapFlag = flag.Bool("gap", false, "show hidden commit counts instead of plain fold markers")
var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `gitfold - git log --graph with the boring stretches folded

USAGE:
  gitfold [options] [git log args...]

Runs git log --graph --oneline --decorate --all and collapses runs of
commits on the same branch line to their first and last entries. Extra
arguments are passed to git log, e.g.:

  gitfold -gap -- --since=1.month

OPTIONS:
`

func main() {
	flag.Parse()

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	lines, err := gitfold.Log(context.Background(), flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}

	for _, line := range gitfold.Fold(lines, *gapFlag) {
		fmt.Println(line)
	}
}
