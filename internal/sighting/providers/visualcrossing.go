package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/josiah1121/BuckWatch/internal/sighting"
)

// VisualCrossingClient implements sighting.MoonProvider against the Visual
// Crossing timeline endpoint, scoped to a single calendar day.
type VisualCrossingClient struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewVisualCrossingClient(client *http.Client, apiKey string) *VisualCrossingClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "visualcrossing",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &VisualCrossingClient{
		name:    "visualcrossing",
		apiKey:  apiKey,
		baseURL: "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline",
		httpCfg: HTTPClientConfig{Client: client},
		circuit: cb,
	}
}

func (c *VisualCrossingClient) Name() string {
	return c.name
}

// Fetch retrieves the fractional moon phase for the given coordinates and
// date (YYYY-MM-DD). The timeline request is keyed by location and day in
// the path; only the days block is requested.
func (c *VisualCrossingClient) Fetch(ctx context.Context, lat, lon float64, date string) (sighting.MoonPhaseReading, error) {
	if c.apiKey == "" {
		return sighting.MoonPhaseReading{}, fmt.Errorf("%w: visualcrossing api key is not configured", sighting.ErrRequest)
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("include", "days")

	u := fmt.Sprintf("%s/%f,%f/%s?%s", c.baseURL, lat, lon, date, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return sighting.MoonPhaseReading{}, fmt.Errorf("%w: %v", sighting.ErrRequest, err)
	}

	resp, err := doRequest(c.httpCfg, c.circuit, req)
	if err != nil {
		return sighting.MoonPhaseReading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Days []struct {
			Datetime  string  `json:"datetime"`
			Moonphase float64 `json:"moonphase"`
		} `json:"days"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return sighting.MoonPhaseReading{}, fmt.Errorf("%w: %v", sighting.ErrDecode, err)
	}

	if len(payload.Days) == 0 {
		return sighting.MoonPhaseReading{}, fmt.Errorf("%w: no day entries", sighting.ErrNoData)
	}

	return sighting.MoonPhaseReading{
		Date:  payload.Days[0].Datetime,
		Phase: payload.Days[0].Moonphase,
	}, nil
}
