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

// OpenWeatherClient implements sighting.WeatherProvider against the
// OpenWeather One Call time machine endpoint, which returns the historical
// hourly reading for a coordinate at a point in time.
type OpenWeatherClient struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherClient(client *http.Client, apiKey string) *OpenWeatherClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherClient{
		name:    "openweather",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/3.0/onecall/timemachine",
		httpCfg: HTTPClientConfig{Client: client},
		circuit: cb,
	}
}

func (c *OpenWeatherClient) Name() string {
	return c.name
}

// Fetch retrieves the hourly weather snapshot for the given coordinates and
// instant. The first entry of the response's data array is the
// representative reading for that hour.
func (c *OpenWeatherClient) Fetch(ctx context.Context, lat, lon float64, instant time.Time) (sighting.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return sighting.WeatherSnapshot{}, fmt.Errorf("%w: openweather api key is not configured", sighting.ErrRequest)
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("dt", fmt.Sprintf("%d", instant.Unix()))
	values.Set("appid", c.apiKey)
	values.Set("units", "imperial")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return sighting.WeatherSnapshot{}, fmt.Errorf("%w: %v", sighting.ErrRequest, err)
	}

	resp, err := doRequest(c.httpCfg, c.circuit, req)
	if err != nil {
		return sighting.WeatherSnapshot{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Lat            float64 `json:"lat"`
		Lon            float64 `json:"lon"`
		Timezone       string  `json:"timezone"`
		TimezoneOffset int     `json:"timezone_offset"`
		Data           []struct {
			Dt        int64   `json:"dt"`
			Sunrise   int64   `json:"sunrise"`
			Sunset    int64   `json:"sunset"`
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			WindSpeed float64 `json:"wind_speed"`
			WindDeg   int     `json:"wind_deg"`
			WindGust  float64 `json:"wind_gust"`
			Rain      float64 `json:"rain"`
			Weather   []struct {
				ID          int    `json:"id"`
				Main        string `json:"main"`
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return sighting.WeatherSnapshot{}, fmt.Errorf("%w: %v", sighting.ErrDecode, err)
	}

	if len(payload.Data) == 0 {
		return sighting.WeatherSnapshot{}, fmt.Errorf("%w: no hourly entries", sighting.ErrNoData)
	}

	d := payload.Data[0]
	snap := sighting.WeatherSnapshot{
		Time:           time.Unix(d.Dt, 0).UTC(),
		Sunrise:        d.Sunrise,
		Sunset:         d.Sunset,
		TimezoneOffset: payload.TimezoneOffset,
		Temperature:    d.Temp,
		FeelsLike:      d.FeelsLike,
		WindSpeed:      d.WindSpeed,
		WindDeg:        d.WindDeg,
		WindGust:       d.WindGust,
		Precipitation:  d.Rain,
	}
	for _, w := range d.Weather {
		snap.Descriptions = append(snap.Descriptions, w.Description)
	}

	return snap, nil
}
