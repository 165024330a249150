package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/noahmasoud/autodoc"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Client talks to the AutoDoc backend. It implements every service
// interface declared in the root package.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger

	tokens            autodoc.TokenStore
	onUnauthenticated func()
	policy            autodoc.RetryPolicy
	timeout           time.Duration
	base              http.RoundTripper
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for retry and request logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTokenStore enables bearer authentication. onUnauthenticated is invoked
// when a genuine 401 clears the session; it may be nil.
func WithTokenStore(tokens autodoc.TokenStore, onUnauthenticated func()) Option {
	return func(c *Client) {
		c.tokens = tokens
		c.onUnauthenticated = onUnauthenticated
	}
}

// WithRetryPolicy overrides the default backoff tuning.
func WithRetryPolicy(policy autodoc.RetryPolicy) Option {
	return func(c *Client) { c.policy = policy }
}

// WithTimeout sets the per-request client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit paces outgoing requests to at most rps per second with the
// given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithTransport replaces the innermost round tripper. Mostly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.base = rt }
}

// NewClient creates a Client for the backend at rawURL. The transport chain
// is auth (token attach, 401 handling) around retry (backoff) around the
// base transport.
func NewClient(rawURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("rest: invalid base url %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("rest: base url %q must be absolute", rawURL)
	}

	c := &Client{
		baseURL: u,
		logger:  zerolog.Nop(),
		policy:  autodoc.DefaultRetryPolicy(),
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	var transport http.RoundTripper = &RetryTransport{
		Base:   c.base,
		Policy: c.policy,
		Logger: c.logger,
	}
	if c.tokens != nil {
		transport = &AuthTransport{
			Base:              transport,
			Tokens:            c.tokens,
			OnUnauthenticated: c.onUnauthenticated,
		}
	}

	c.httpClient = &http.Client{
		Transport: transport,
		Timeout:   c.timeout,
	}
	return c, nil
}

// do executes one JSON request. A non-2xx response is returned as *APIError;
// when out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decoding response: %w", err)
	}
	return nil
}
