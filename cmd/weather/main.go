package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"termtools/internal/config"
	"termtools/internal/core"
	"termtools/internal/llm"
	"termtools/internal/logging"
	"termtools/internal/styles"
	"termtools/internal/weather"
)

var quietFlag = flag.Bool("quiet", false, "skip the model commentary")
var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `weather - wttr.in report with optional model commentary

USAGE:
  weather [options] [location]

Without a location argument, the configured weather.location is used;
when that is empty too, wttr.in geolocates by IP. Commentary comes from
the same local model ask uses and is skipped silently when the model is
unavailable.

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

	location := strings.Join(flag.Args(), " ")
	if location == "" {
		location = cfg.Weather.Location
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := weather.NewClient(weather.Options{Logger: logger}).Fetch(ctx, location)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}

	fmt.Print(weather.Format(report, displayWidth()))

	if *quietFlag || !cfg.Weather.Commentary {
		return 0
	}

	runner, err := llm.NewRunner(cfg.Model, logger)
	if err != nil {
		logger.Warn("no model runner for commentary", zap.Error(err))
		return 0
	}

	commentary, err := weather.Commentary(ctx, runner, report)
	if err != nil {
		// The report already printed; commentary is a bonus.
		logger.Warn("commentary unavailable", zap.Error(err))
		return 0
	}

	fmt.Println()
	fmt.Print(commentary)
	return 0
}

func displayWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 100 {
		return 100
	}
	return width
}
