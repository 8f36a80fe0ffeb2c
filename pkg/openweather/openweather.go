package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public OpenWeather current-weather endpoint root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrUnavailable means the provider could not be reached or answered with a
// non-2xx status.
var ErrUnavailable = errors.New("weather provider unavailable")

// Observation is the provider's current-weather payload, trimmed to the
// fields this service consumes.
type Observation struct {
	Weather []struct {
		Icon string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
}

// Config holds the settings for an OpenWeather client.
type Config struct {
	APIKey     string
	BaseURL    string       // defaults to DefaultBaseURL
	HTTPClient *http.Client // defaults to a client with a 10s timeout
}

// Client is an HTTP client for the OpenWeather API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new OpenWeather client from the given configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Current fetches the current weather for a city, in metric units.
func (c *Client) Current(ctx context.Context, city string) (*Observation, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var obs Observation
	if err := json.NewDecoder(resp.Body).Decode(&obs); err != nil {
		return nil, fmt.Errorf("%w: invalid response body: %v", ErrUnavailable, err)
	}
	return &obs, nil
}
