package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

// Sentinel errors returned by the client. Callers map these onto their own
// error taxonomy.
var (
	// ErrUnavailable means the provider could not be reached or answered
	// with a non-2xx status.
	ErrUnavailable = errors.New("movie provider unavailable")
	// ErrNotFound means the provider reported no movie for the given id.
	ErrNotFound = errors.New("movie not found")
)

// Movie is a single entry as the provider returns it. Field names follow the
// provider's JSON casing.
type Movie struct {
	ImdbID  string `json:"imdbID"`
	Title   string `json:"Title"`
	Year    string `json:"Year"`
	Poster  string `json:"Poster"`
	Actors  string `json:"Actors"`
	Genre   string `json:"Genre"`
	Type    string `json:"Type"`
	Runtime string `json:"Runtime"`
}

// searchResponse is the provider's search envelope. Response is the string
// "True"/"False" success flag; totalResults arrives as a string.
type searchResponse struct {
	Response     string  `json:"Response"`
	Error        string  `json:"Error"`
	Search       []Movie `json:"Search"`
	TotalResults string  `json:"totalResults"`
}

// detailResponse is a single movie lookup; the movie fields are inlined next
// to the success flag.
type detailResponse struct {
	Movie
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Config holds the settings for an OMDb client.
type Config struct {
	APIKey     string
	BaseURL    string       // defaults to DefaultBaseURL
	HTTPClient *http.Client // defaults to a client with a 10s timeout
}

// Client is an HTTP client for the OMDb movie catalog API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new OMDb client from the given configuration.
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

// Search runs a title search and returns the matching page of movies plus the
// provider's total result count. A "no results" answer from the provider is
// not an error: it returns an empty slice and a zero count.
func (c *Client) Search(ctx context.Context, query string, page int) ([]Movie, int, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("type", "movie")

	var result searchResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, 0, err
	}
	if result.Response == "False" {
		return []Movie{}, 0, nil
	}
	total, err := strconv.Atoi(result.TotalResults)
	if err != nil {
		log.Printf("Warning: movie provider sent unparsable totalResults %q, using page size", result.TotalResults)
		total = len(result.Search)
	}
	return result.Search, total, nil
}

// GetByID fetches full details for one movie by its external id. Returns
// ErrNotFound when the provider reports no such id.
func (c *Client) GetByID(ctx context.Context, externalID string) (*Movie, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", externalID)

	var result detailResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, err
	}
	if result.Response == "False" {
		return nil, ErrNotFound
	}
	return &result.Movie, nil
}

// get performs a GET against the provider and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: invalid response body: %v", ErrUnavailable, err)
	}
	return nil
}
