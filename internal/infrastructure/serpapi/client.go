package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/shopsage/backend/internal/domain"
)

// ClientConfig holds the region pinning for shopping searches.
type ClientConfig struct {
	Location    string // e.g. "New Delhi,Delhi,India"
	CountryCode string // Google gl parameter
	Language    string // Google hl parameter
	Currency    string // e.g. "INR"
}

// Client handles communication with the SerpAPI Google Shopping engine
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	config      ClientConfig
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new SerpAPI client
func NewClient(apiKey, baseURL string, config ClientConfig) *Client {
	// SerpAPI plans meter by the month; ~1 request/sec with a small burst
	// keeps a single instance well inside any plan.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		config:      config,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// SearchProducts issues one google_shopping search. When both price bounds
// are present they are passed as a "min,max" price_range parameter. Transport
// and API errors are wrapped in ErrShoppingAPIFailure; an empty result list
// is a valid response, not an error.
func (c *Client) SearchProducts(ctx context.Context, query string, minPrice, maxPrice *float64) (*domain.ShoppingSearchResponse, error) {
	if c.debug {
		log.Printf("[SERPAPI] SearchProducts called with query: %q", query)
	}

	endpoint := fmt.Sprintf("%s/search.json", c.baseURL)
	params := url.Values{}
	params.Add("engine", "google_shopping")
	params.Add("q", query)
	params.Add("api_key", c.apiKey)
	params.Add("location", c.config.Location)
	params.Add("gl", c.config.CountryCode)
	params.Add("hl", c.config.Language)
	params.Add("currency", c.config.Currency)

	if minPrice != nil && maxPrice != nil {
		params.Add("price_range", fmt.Sprintf("%s,%s",
			strconv.FormatFloat(*minPrice, 'f', -1, 64),
			strconv.FormatFloat(*maxPrice, 'f', -1, 64)))
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[SERPAPI] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[SERPAPI] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrShoppingAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var searchResp domain.ShoppingSearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrShoppingAPIFailure, err)
		}

		// SerpAPI reports engine-level failures inside a 200 response.
		if searchResp.Error != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrShoppingAPIFailure, searchResp.Error)
		}

		if c.debug {
			log.Printf("[SERPAPI] Found %d listings for query: %q", len(searchResp.ShoppingResults), query)
		}
		return &searchResp, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ShopSage/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrShoppingAPIFailure, err)
	}

	return resp, nil
}
