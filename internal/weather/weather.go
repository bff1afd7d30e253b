// Package weather fetches wttr.in's JSON report and formats it for a
// terminal, optionally with a model-written commentary paragraph.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://wttr.in"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Options struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger
}

func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{baseURL: baseURL, http: httpClient, logger: logger}
}

// Report is the slice of a wttr.in j1 answer the tools display.
// wttr.in serves every number as a string; they are kept that way.
type Report struct {
	Location   string
	Condition  string
	TempC      string
	FeelsLikeC string
	Humidity   string
	WindKmph   string
	WindDir    string
	Days       []Day
}

type Day struct {
	Date      time.Time
	MinC      string
	MaxC      string
	Condition string
}

// j1Response mirrors wttr.in's j1 JSON. Single values arrive wrapped
// in one-element arrays of {"value": ...} objects.
type j1Response struct {
	CurrentCondition []struct {
		TempC          string  `json:"temp_C"`
		FeelsLikeC     string  `json:"FeelsLikeC"`
		Humidity       string  `json:"humidity"`
		WindspeedKmph  string  `json:"windspeedKmph"`
		Winddir16Point string  `json:"winddir16Point"`
		WeatherDesc    []value `json:"weatherDesc"`
	} `json:"current_condition"`
	NearestArea []struct {
		AreaName []value `json:"areaName"`
		Country  []value `json:"country"`
	} `json:"nearest_area"`
	Weather []struct {
		Date     string `json:"date"`
		MaxtempC string `json:"maxtempC"`
		MintempC string `json:"mintempC"`
		Hourly   []struct {
			WeatherDesc []value `json:"weatherDesc"`
		} `json:"hourly"`
	} `json:"weather"`
}

type value struct {
	Value string `json:"value"`
}

func first(values []value) string {
	if len(values) == 0 {
		return ""
	}
	return values[0].Value
}

// Fetch retrieves the report for a location. An empty location lets
// wttr.in geolocate the caller by IP.
func (c *Client) Fetch(ctx context.Context, location string) (*Report, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(location) + "?format=j1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wttr.in returned status %d", resp.StatusCode)
	}

	var parsed j1Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}
	if len(parsed.CurrentCondition) == 0 {
		return nil, fmt.Errorf("weather response has no current conditions")
	}

	current := parsed.CurrentCondition[0]
	report := &Report{
		Condition:  first(current.WeatherDesc),
		TempC:      current.TempC,
		FeelsLikeC: current.FeelsLikeC,
		Humidity:   current.Humidity,
		WindKmph:   current.WindspeedKmph,
		WindDir:    current.Winddir16Point,
	}

	if len(parsed.NearestArea) > 0 {
		area := parsed.NearestArea[0]
		name, country := first(area.AreaName), first(area.Country)
		switch {
		case name != "" && country != "":
			report.Location = name + ", " + country
		case name != "":
			report.Location = name
		}
	}

	for _, day := range parsed.Weather {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			c.logger.Debug("skipping forecast day with bad date", zap.String("date", day.Date))
			continue
		}
		d := Day{
			Date: date,
			MinC: day.MintempC,
			MaxC: day.MaxtempC,
		}
		// The hourly slots are 3-hour steps; index 4 is midday.
		if len(day.Hourly) > 4 {
			d.Condition = first(day.Hourly[4].WeatherDesc)
		} else if len(day.Hourly) > 0 {
			d.Condition = first(day.Hourly[0].WeatherDesc)
		}
		report.Days = append(report.Days, d)
	}

	return report, nil
}
