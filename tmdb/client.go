package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Client wraps the TMDB v3 API
type Client struct {
	baseURL    string
	apiKey     string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client. The bearer token is required for
// every call; the API key rides along as a query parameter on the search
// and detail endpoints.
func NewClient(apiKey, token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("TMDB API token is required")
	}

	options := clientOptions{
		baseURL: defaultBaseURL,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiKey:     apiKey,
		token:      token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// doRequest performs an authenticated GET against the API and returns the
// response body after the status code has passed classification. withKey
// adds the api_key query parameter alongside the bearer header.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, withKey bool) ([]byte, error) {
	if withKey && c.apiKey != "" {
		if params == nil {
			params = url.Values{}
		}
		params.Set("api_key", c.apiKey)
	}

	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Msg("Making TMDB API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if err := CheckStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return body, nil
}

// SearchMovies looks up movies matching a free-text query, preserving the
// API's relevance order. An empty result list is not an error.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}

	params := url.Values{}
	params.Set("query", query)

	body, err := c.doRequest(ctx, "/search/movie", params, true)
	if err != nil {
		return nil, err
	}

	var response SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	c.logger.Debug().
		Str("query", query).
		Int("count", len(response.Results)).
		Msg("Retrieved search results from TMDB")

	return response.Results, nil
}

// MovieTitle fetches the display title for a movie id. The upstream
// omitting the title surfaces as an empty string, not an error.
func (c *Client) MovieTitle(ctx context.Context, movieID int64) (string, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", movieID), nil, true)
	if err != nil {
		return "", err
	}

	var movie Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return "", fmt.Errorf("failed to parse movie response: %w", err)
	}

	return movie.Title, nil
}

// WatchProviders returns the availability payload for a movie scoped to one
// watch region. A region absent from the response yields a zero-value
// RegionOffers rather than an error.
func (c *Client) WatchProviders(ctx context.Context, movieID int64, region string) (RegionOffers, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/watch/providers", movieID), nil, false)
	if err != nil {
		return RegionOffers{}, err
	}

	var response WatchProvidersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return RegionOffers{}, fmt.Errorf("failed to parse watch providers response: %w", err)
	}

	offers := response.Results[region]

	c.logger.Debug().
		Int64("movie_id", movieID).
		Str("region", region).
		Int("flatrate", len(offers.Flatrate)).
		Msg("Retrieved watch providers from TMDB")

	return offers, nil
}

// Providers lists the display names of every provider the API knows for a
// market, in the API's order. An empty region omits the watch_region filter
// from the request entirely.
func (c *Client) Providers(ctx context.Context, region string) ([]string, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	if region != "" {
		params.Set("watch_region", region)
	}

	body, err := c.doRequest(ctx, "/watch/providers/movie", params, false)
	if err != nil {
		return nil, err
	}

	var response ProviderListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse provider list response: %w", err)
	}

	names := make([]string, 0, len(response.Results))
	for _, provider := range response.Results {
		names = append(names, provider.ProviderName)
	}

	return names, nil
}
