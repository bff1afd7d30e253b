package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"termtools/internal/config"
	"termtools/internal/core"
	"termtools/internal/logging"
	"termtools/internal/scrobble"
	"termtools/internal/tmuxstatus"
)

var tmuxFlag = flag.Bool("tmux", false, "wrap segments in tmux #[fg=...] directives")
var maxFlag = flag.Int("max", 0, "maximum width in display cells (0 = unlimited)")
var helpFlag = flag.Bool("h", false, "display help information")

const helpText = `tmuxstatus - status-line fragment for tmux

USAGE:
  tmuxstatus [options]

Prints current track (when Last.fm is configured), load average and
clock on one line. Meant for tmux.conf:

  set -g status-right "#(tmuxstatus -tmux -max 60)"

Segments that cannot be produced are left out; the tool never fails.

OPTIONS:
`

func main() {
	flag.Parse()

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	// Malformed config degrades to defaults here. tmux would render an
	// error message into the status bar otherwise.
	cfg, err := config.Load(core.ConfigFile())
	if err != nil {
		cfg = config.DefaultConfig()
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	var segments []tmuxstatus.Segment

	if track := currentTrack(cfg, logger); track != "" {
		segments = append(segments, tmuxstatus.Segment{Text: track, Color: "cyan"})
	}

	if load, err := tmuxstatus.LoadAverage(tmuxstatus.ProcLoadAvg); err == nil {
		segments = append(segments, tmuxstatus.Segment{Text: load, Color: "yellow"})
	} else {
		logger.Debug("no load average", zap.Error(err))
	}

	segments = append(segments, tmuxstatus.Segment{Text: tmuxstatus.Clock(time.Now())})

	fmt.Println(tmuxstatus.Render(segments, *tmuxFlag, *maxFlag))
}

// currentTrack returns the playing track, or "" when Last.fm is not
// configured, unreachable, or idle. tmux refreshes the status line
// constantly, so the lookup gets a tight deadline.
func currentTrack(cfg *config.Config, logger *zap.Logger) string {
	client, err := scrobble.NewClient(scrobble.Options{
		APIKey: cfg.LastFM.APIKey,
		User:   cfg.LastFM.User,
		Logger: logger,
	})
	if err != nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	track, err := client.RecentTrack(ctx)
	if err != nil {
		logger.Debug("track lookup failed", zap.Error(err))
		return ""
	}
	if track == nil || !track.NowPlaying {
		return ""
	}

	return fmt.Sprintf("♪ %s – %s", track.Artist, track.Title)
}
