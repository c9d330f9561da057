package providers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josiah1121/BuckWatch/internal/sighting"
)

const openWeatherURLPattern = `=~^https://api\.openweathermap\.org/data/3\.0/onecall/timemachine`

func openWeatherSuccessBody() string {
	return `{
		"lat": 35.0,
		"lon": -80.0,
		"timezone": "America/New_York",
		"timezone_offset": -18000,
		"data": [{
			"dt": 1730630700,
			"sunrise": 1730634480,
			"sunset": 1730672460,
			"temp": 54.2,
			"feels_like": 51.8,
			"pressure": 1014,
			"humidity": 82,
			"wind_speed": 7.2,
			"wind_deg": 200,
			"wind_gust": 11.4,
			"rain": 0.5,
			"weather": [
				{"id": 804, "main": "Clouds", "description": "overcast clouds", "icon": "04d"}
			]
		}]
	}`
}

func newMockedClient(t *testing.T) *http.Client {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestOpenWeatherFetchSuccess(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodGet, openWeatherURLPattern,
		httpmock.NewStringResponder(http.StatusOK, openWeatherSuccessBody()))

	c := NewOpenWeatherClient(client, "test-key")
	instant := time.Date(2024, 11, 3, 6, 45, 0, 0, time.UTC)

	snap, err := c.Fetch(context.Background(), 35.0, -80.0, instant)
	require.NoError(t, err)

	assert.Equal(t, time.Unix(1730630700, 0).UTC(), snap.Time)
	assert.Equal(t, int64(1730634480), snap.Sunrise)
	assert.Equal(t, int64(1730672460), snap.Sunset)
	assert.Equal(t, -18000, snap.TimezoneOffset)
	assert.InDelta(t, 54.2, snap.Temperature, 0.001)
	assert.InDelta(t, 51.8, snap.FeelsLike, 0.001)
	assert.InDelta(t, 7.2, snap.WindSpeed, 0.001)
	assert.Equal(t, 200, snap.WindDeg)
	assert.InDelta(t, 11.4, snap.WindGust, 0.001)
	assert.InDelta(t, 0.5, snap.Precipitation, 0.001)
	assert.Equal(t, []string{"overcast clouds"}, snap.Descriptions)

	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestOpenWeatherFetchSendsExpectedQuery(t *testing.T) {
	client := newMockedClient(t)

	var gotQuery string
	httpmock.RegisterResponder(http.MethodGet, openWeatherURLPattern,
		func(req *http.Request) (*http.Response, error) {
			gotQuery = req.URL.RawQuery
			return httpmock.NewStringResponse(http.StatusOK, openWeatherSuccessBody()), nil
		})

	c := NewOpenWeatherClient(client, "test-key")
	instant := time.Date(2024, 11, 3, 6, 45, 0, 0, time.UTC)

	_, err := c.Fetch(context.Background(), 35.0, -80.0, instant)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "appid=test-key")
	assert.Contains(t, gotQuery, "units=imperial")
	assert.Contains(t, gotQuery, "dt=1730616300") // 2024-11-03T06:45:00Z
	assert.Contains(t, gotQuery, "lat=35.000000")
	assert.Contains(t, gotQuery, "lon=-80.000000")
}

func TestOpenWeatherFetchNoAPIKey(t *testing.T) {
	client := newMockedClient(t)

	c := NewOpenWeatherClient(client, "")
	_, err := c.Fetch(context.Background(), 35.0, -80.0, time.Now())

	require.ErrorIs(t, err, sighting.ErrRequest)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestOpenWeatherFetchStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"unauthorized", http.StatusUnauthorized, sighting.ErrRequest},
		{"forbidden", http.StatusForbidden, sighting.ErrRequest},
		{"not_found", http.StatusNotFound, sighting.ErrRequest},
		{"rate_limited", http.StatusTooManyRequests, sighting.ErrNetwork},
		{"server_error", http.StatusInternalServerError, sighting.ErrNetwork},
		{"bad_gateway", http.StatusBadGateway, sighting.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockedClient(t)
			httpmock.RegisterResponder(http.MethodGet, openWeatherURLPattern,
				httpmock.NewStringResponder(tt.statusCode, `{}`))

			c := NewOpenWeatherClient(client, "test-key")
			_, err := c.Fetch(context.Background(), 35.0, -80.0, time.Now())

			require.ErrorIs(t, err, tt.wantErr)
			// One request, no retry.
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestOpenWeatherFetchDecodeError(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodGet, openWeatherURLPattern,
		httpmock.NewStringResponder(http.StatusOK, `not json`))

	c := NewOpenWeatherClient(client, "test-key")
	_, err := c.Fetch(context.Background(), 35.0, -80.0, time.Now())

	require.ErrorIs(t, err, sighting.ErrDecode)
}

func TestOpenWeatherFetchNoData(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodGet, openWeatherURLPattern,
		httpmock.NewStringResponder(http.StatusOK, `{"lat": 35.0, "lon": -80.0, "data": []}`))

	c := NewOpenWeatherClient(client, "test-key")
	_, err := c.Fetch(context.Background(), 35.0, -80.0, time.Now())

	require.ErrorIs(t, err, sighting.ErrNoData)
}
