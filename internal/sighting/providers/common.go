package providers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/josiah1121/BuckWatch/internal/sighting"
)

// HTTPClientConfig bundles the shared outbound HTTP client.
type HTTPClientConfig struct {
	Client *http.Client
}

var errNoHTTPClient = errors.New("http client not configured")

// doRequest executes the request through the provider's circuit breaker and
// classifies the outcome into the sighting error taxonomy. There is no
// retry: every failure is terminal for the call, the breaker only sheds
// load while an upstream is unhealthy.
func doRequest(cfg HTTPClientConfig, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.Client.Do(req)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %v", sighting.ErrNetwork, execErr)
		}

		switch {
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			resp.Body.Close()
			return nil, fmt.Errorf("%w: status %d", sighting.ErrNetwork, resp.StatusCode)
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			// 4xx means we sent something the upstream will not accept,
			// typically a bad or missing API key.
			resp.Body.Close()
			return nil, fmt.Errorf("%w: status %d", sighting.ErrRequest, resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open: %v", sighting.ErrNetwork, err)
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}
