package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the DBLP search API base URL.
	BaseURL = "https://dblp.org"

	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 10 * time.Second

	// RateLimit keeps well under DBLP's courtesy limit.
	RateLimit = 2.0

	// DefaultHitLimit is the number of hits requested per search.
	DefaultHitLimit = 5
)

// Hit is one publication hit from a DBLP search.
type Hit struct {
	Title string
	Venue string
	Year  string
	URL   string
}

// Client is a rate-limited HTTP client for the DBLP search API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	timeout    time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new DBLP search client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// publResponse mirrors the DBLP publication search JSON envelope.
type publResponse struct {
	Result struct {
		Hits struct {
			Total string `json:"@total"`
			Hit   []struct {
				Info struct {
					Title string     `json:"title"`
					Venue venueField `json:"venue"`
					Year  string     `json:"year"`
					URL   string     `json:"url"`
				} `json:"info"`
			} `json:"hit"`
		} `json:"hits"`
	} `json:"result"`
}

// venueField handles DBLP's venue value, which is a string for most
// records but an array for multi-venue entries.
type venueField string

func (v *venueField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = venueField(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = venueField(strings.Join(list, " / "))
		return nil
	}
	return fmt.Errorf("venue is neither string nor array")
}

// Search queries the publication search endpoint and returns the hits in
// ranking order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = DefaultHitLimit
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := fmt.Sprintf("%s/search/publ/api?q=%s&format=json&h=%d",
		c.baseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeoutErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 429 {
		return nil, fmt.Errorf("%w: status 429", ErrRateLimited)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeoutErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetworkError, err)
	}

	return parseSearchResponse(body)
}

// parseSearchResponse decodes a publication search response body.
func parseSearchResponse(body []byte) ([]Hit, error) {
	var pr publResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrInvalidResponse, err)
	}

	hits := make([]Hit, 0, len(pr.Result.Hits.Hit))
	for _, h := range pr.Result.Hits.Hit {
		hits = append(hits, Hit{
			Title: h.Info.Title,
			Venue: string(h.Info.Venue),
			Year:  h.Info.Year,
			URL:   h.Info.URL,
		})
	}
	return hits, nil
}

// isTimeoutErr reports whether the transport error was a deadline.
func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
