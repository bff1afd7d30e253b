package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const j1Fixture = `{
	"current_condition": [{
		"temp_C": "18",
		"FeelsLikeC": "16",
		"humidity": "60",
		"windspeedKmph": "12",
		"winddir16Point": "NW",
		"weatherDesc": [{"value": "Partly cloudy"}]
	}],
	"nearest_area": [{
		"areaName": [{"value": "Berlin"}],
		"country": [{"value": "Germany"}]
	}],
	"weather": [
		{
			"date": "2025-06-15",
			"maxtempC": "22",
			"mintempC": "12",
			"hourly": [
				{"weatherDesc": [{"value": "Clear"}]},
				{"weatherDesc": [{"value": "Clear"}]},
				{"weatherDesc": [{"value": "Sunny"}]},
				{"weatherDesc": [{"value": "Sunny"}]},
				{"weatherDesc": [{"value": "Sunny"}]},
				{"weatherDesc": [{"value": "Partly cloudy"}]},
				{"weatherDesc": [{"value": "Cloudy"}]},
				{"weatherDesc": [{"value": "Cloudy"}]}
			]
		},
		{
			"date": "2025-06-16",
			"maxtempC": "25",
			"mintempC": "14",
			"hourly": [{"weatherDesc": [{"value": "Thundery outbreaks possible"}]}]
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{BaseURL: server.URL})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("full report", func(t *testing.T) {
		var gotPath, gotQuery string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			fmt.Fprint(w, j1Fixture)
		})

		report, err := client.Fetch(context.Background(), "Berlin")
		require.NoError(t, err)

		assert.Equal(t, "/Berlin", gotPath)
		assert.Equal(t, "format=j1", gotQuery)

		assert.Equal(t, "Berlin, Germany", report.Location)
		assert.Equal(t, "Partly cloudy", report.Condition)
		assert.Equal(t, "18", report.TempC)
		assert.Equal(t, "16", report.FeelsLikeC)
		assert.Equal(t, "60", report.Humidity)
		assert.Equal(t, "12", report.WindKmph)
		assert.Equal(t, "NW", report.WindDir)

		require.Len(t, report.Days, 2)
		assert.Equal(t, "Sunny", report.Days[0].Condition) // midday slot
		assert.Equal(t, "12", report.Days[0].MinC)
		assert.Equal(t, "22", report.Days[0].MaxC)
		assert.Equal(t, time.June, report.Days[0].Date.Month())
		// Short hourly lists fall back to the first slot.
		assert.Equal(t, "Thundery outbreaks possible", report.Days[1].Condition)
	})

	t.Run("empty location is passed through", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			fmt.Fprint(w, j1Fixture)
		})

		_, err := client.Fetch(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "/", gotPath)
	})

	t.Run("http error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		})

		_, err := client.Fetch(context.Background(), "Nowhere")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("missing current conditions", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"current_condition": []}`)
		})

		_, err := client.Fetch(context.Background(), "Berlin")
		assert.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	report := &Report{
		Location:   "Berlin, Germany",
		Condition:  "Partly cloudy",
		TempC:      "18",
		FeelsLikeC: "16",
		Humidity:   "60",
		WindKmph:   "12",
		WindDir:    "NW",
		Days: []Day{
			{Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), MinC: "12", MaxC: "22", Condition: "Sunny"},
		},
	}

	out := Format(report, 80)
	assert.Contains(t, out, "Berlin, Germany")
	assert.Contains(t, out, "Partly cloudy, 18°C (feels like 16°C)")
	assert.Contains(t, out, "humidity 60%, wind 12 km/h NW")
	assert.Contains(t, out, "Sun  12 to 22°C  Sunny")
}

func TestFormat_FeelsLikeMatchesTemp(t *testing.T) {
	report := &Report{Condition: "Clear", TempC: "20", FeelsLikeC: "20"}
	out := Format(report, 0)
	assert.NotContains(t, out, "feels like")
}

// commentaryRunner fakes the llm.Runner contract.
type commentaryRunner struct {
	response string
	err      error
	prompts  []string
}

func (m *commentaryRunner) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func TestCommentary(t *testing.T) {
	report := &Report{Location: "Berlin, Germany", Condition: "Rain", TempC: "9"}

	t.Run("renders model output", func(t *testing.T) {
		runner := &commentaryRunner{response: "Take an **umbrella**."}

		out, err := Commentary(context.Background(), runner, report)
		require.NoError(t, err)
		assert.Contains(t, out, "umbrella")

		require.Len(t, runner.prompts, 1)
		assert.Contains(t, runner.prompts[0], "Berlin, Germany")
		assert.Contains(t, runner.prompts[0], "Rain")
	})

	t.Run("runner error surfaces", func(t *testing.T) {
		sentinel := errors.New("runtime gone")
		runner := &commentaryRunner{err: sentinel}

		_, err := Commentary(context.Background(), runner, report)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("empty answer is an error", func(t *testing.T) {
		runner := &commentaryRunner{response: "   \n"}

		_, err := Commentary(context.Background(), runner, report)
		assert.Error(t, err)
	})
}
