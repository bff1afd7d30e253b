package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"termtools/internal/config"
	"termtools/internal/core"
	"termtools/internal/logging"
	"termtools/internal/scrobble"
	"termtools/internal/styles"
	"termtools/internal/text"
)

var maxFlag = flag.Int("max", 0, "maximum width in display cells (0 = unlimited)")
var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `nowplaying - what your Last.fm account is scrobbling

USAGE:
  nowplaying [options]

Prints the track playing right now, or the last played one with its
age, or "nothing playing". Requires lastfm.api_key and lastfm.user in
the config file.

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

	client, err := scrobble.NewClient(scrobble.Options{
		APIKey: cfg.LastFM.APIKey,
		User:   cfg.LastFM.User,
		Logger: logger,
	})
	if err != nil {
		if errors.Is(err, scrobble.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, styles.ERROR(
				fmt.Sprintf("last.fm is not configured; set lastfm.api_key and lastfm.user in %s", core.ConfigFile())))
		} else {
			fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		}
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	track, err := client.RecentTrack(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		return 1
	}

	line := scrobble.FormatLine(track, time.Now())
	if *maxFlag > 0 {
		line = text.Truncate(line, *maxFlag)
	}

	if track == nil {
		fmt.Println(styles.MUTED(line))
	} else {
		fmt.Println(styles.INFO(line))
	}

	return 0
}
