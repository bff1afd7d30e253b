// Package scrobble is a minimal Last.fm client: just enough of the
// user.getrecenttracks method to know what is playing.
package scrobble

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// ErrNotConfigured means the API key or username is missing from the
// config file.
var ErrNotConfigured = errors.New("last.fm is not configured")

// Track is one scrobbled (or currently playing) track.
type Track struct {
	Artist     string
	Title      string
	Album      string
	NowPlaying bool
	PlayedAt   time.Time // zero while NowPlaying
}

type Client struct {
	apiKey  string
	user    string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Options struct {
	APIKey  string
	User    string
	BaseURL string       // defaults to the public API
	HTTP    *http.Client // defaults to a 10s-timeout client
	Logger  *zap.Logger
}

func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" || opts.User == "" {
		return nil, ErrNotConfigured
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:  opts.APIKey,
		user:    opts.User,
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}, nil
}

// recentTracksResponse mirrors the slice of the Last.fm JSON we care
// about. The API reports errors in-band with a 200 status.
type recentTracksResponse struct {
	RecentTracks struct {
		Track []struct {
			Name   string `json:"name"`
			Artist struct {
				Name string `json:"#text"`
			} `json:"artist"`
			Album struct {
				Name string `json:"#text"`
			} `json:"album"`
			Attr *struct {
				NowPlaying string `json:"nowplaying"`
			} `json:"@attr"`
			Date *struct {
				UTS string `json:"uts"`
			} `json:"date"`
		} `json:"track"`
	} `json:"recenttracks"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RecentTrack returns the user's most recent track, or nil when the
// account has never scrobbled anything.
func (c *Client) RecentTrack(ctx context.Context) (*Track, error) {
	query := url.Values{}
	query.Set("method", "user.getrecenttracks")
	query.Set("user", c.user)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("last.fm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("last.fm returned status %d", resp.StatusCode)
	}

	var parsed recentTracksResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding last.fm response: %w", err)
	}
	if parsed.Error != 0 {
		return nil, fmt.Errorf("last.fm error %d: %s", parsed.Error, parsed.Message)
	}
	if len(parsed.RecentTracks.Track) == 0 {
		return nil, nil
	}

	raw := parsed.RecentTracks.Track[0]
	track := &Track{
		Artist: raw.Artist.Name,
		Title:  raw.Name,
		Album:  raw.Album.Name,
	}
	if raw.Attr != nil && raw.Attr.NowPlaying == "true" {
		track.NowPlaying = true
	}
	if raw.Date != nil {
		if uts, err := strconv.ParseInt(raw.Date.UTS, 10, 64); err == nil {
			track.PlayedAt = time.Unix(uts, 0)
		}
	}

	c.logger.Debug("recent track",
		zap.String("artist", track.Artist),
		zap.String("title", track.Title),
		zap.Bool("nowPlaying", track.NowPlaying),
	)

	return track, nil
}

// FormatLine renders a track for humans. A playing track reads
// "♪ Artist – Title"; a past one gets a humanized age appended; nil
// means nothing was ever scrobbled.
func FormatLine(track *Track, now time.Time) string {
	if track == nil {
		return "nothing playing"
	}

	line := fmt.Sprintf("♪ %s – %s", track.Artist, track.Title)
	if track.NowPlaying {
		return line
	}
	if !track.PlayedAt.IsZero() {
		return fmt.Sprintf("%s (%s)", line, humanize.RelTime(track.PlayedAt, now, "ago", "from now"))
	}
	return line
}
