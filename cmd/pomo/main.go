package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/term"

	"termtools/internal/config"
	"termtools/internal/core"
	"termtools/internal/logging"
	"termtools/internal/pomo"
	"termtools/internal/styles"
)

var widthFlag = flag.Int("w", pomo.DefaultBarWidth, "width of the progress bar")
var plainFlag = flag.Bool("plain", false, "line-redraw rendering even on a terminal")
var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `pomo - terminal pomodoro timer

USAGE:
  pomo [options] [minutes]     start a timer (default 25 minutes)
  pomo log [-n N]              list recent sessions

Finished and cancelled sessions are recorded in the termtools data
directory, so pomo log shows where the day went.

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

	cfg, err := config.Load(core.ConfigFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) > 0 && args[0] == "log" {
		logFlags := flag.NewFlagSet("pomo log", flag.ContinueOnError)
		count := logFlags.Int("n", 10, "number of sessions to list")
		if err := logFlags.Parse(args[1:]); err != nil {
			return 1
		}
		return showLog(*count)
	}

	minutes := pomo.DefaultMinutes
	switch {
	case len(args) > 1:
		fmt.Fprintln(os.Stderr, styles.ERROR("usage: pomo [options] [minutes]"))
		return 1
	case len(args) == 1:
		minutes, err = strconv.Atoi(args[0])
		if err != nil || minutes < 0 {
			fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("invalid minutes %q", args[0])))
			return 1
		}
	}

	total := time.Duration(minutes) * time.Minute
	fmt.Println(styles.INFO(fmt.Sprintf("Starting a %d-minute pomodoro", minutes)))

	var elapsed time.Duration
	var completed bool

	if term.IsTerminal(int(os.Stdout.Fd())) && !*plainFlag {
		elapsed, completed, err = pomo.RunTUI(total, *widthFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
			return 1
		}
		if !completed {
			fmt.Println("Timer cancelled.")
		}
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		elapsed, completed = pomo.RunPlain(ctx, os.Stdout, total, *widthFlag)
	}

	recordSession(minutes, elapsed, completed, logger)
	return 0
}

// recordSession is best-effort: a timer that ran should never fail the
// tool because the session database is unavailable.
func recordSession(minutes int, elapsed time.Duration, completed bool, logger *zap.Logger) {
	tracker, err := pomo.NewTracker(core.PomoDBFile())
	if err != nil {
		logger.Warn("could not open session database", zap.Error(err))
		return
	}
	if _, err := tracker.Record(minutes, elapsed, completed); err != nil {
		logger.Warn("could not record session", zap.Error(err))
	}
}

func showLog(count int) int {
	tracker, err := pomo.NewTracker(core.PomoDBFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}

	sessions, err := tracker.Recent(count)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}

	if len(sessions) == 0 {
		fmt.Println(styles.MUTED("No sessions recorded yet."))
		return 0
	}

	for _, s := range sessions {
		mark := "✅"
		note := "completed"
		if !s.Completed {
			mark = "✗ "
			note = fmt.Sprintf("cancelled at %s", pomo.FormatRemaining(time.Duration(s.ElapsedSeconds)*time.Second))
		}
		fmt.Printf("%s %3dm  %-18s %s\n", mark, s.Minutes, note, styles.MUTED(humanize.Time(s.CreatedAt)))
	}

	return 0
}
