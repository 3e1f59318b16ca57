package gitlab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

const (
	// DefaultBaseURL is the API root used when no URL is configured.
	DefaultBaseURL = "https://gitlab.com/api/v4"

	// APIVersionPath is the path suffix every base URL must end with.
	APIVersionPath = "/api/v4"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 64 << 20
)

// Ensure Client implements the driven ports.
var (
	_ driven.ProjectLister = (*Client)(nil)
	_ driven.BlobSearcher  = (*Client)(nil)
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Client is a GitLab API client. It is immutable after construction.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
	sleep   SleepFunc
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	transport http.RoundTripper
	timeout   time.Duration
	rps       float64
	sleep     SleepFunc
}

// WithTransport sets the base round tripper under the auth transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.transport = rt }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithRateLimit throttles requests to rps per second. Zero or less disables it.
func WithRateLimit(rps float64) Option {
	return func(o *clientOptions) { o.rps = rps }
}

// WithSleep replaces the function used to wait between rate limited retries.
func WithSleep(fn SleepFunc) Option {
	return func(o *clientOptions) { o.sleep = fn }
}

// NewClient creates a client for the GitLab instance at baseURL,
// authenticating every request with token as a bearer credential.
// An empty baseURL selects DefaultBaseURL.
func NewClient(ctx context.Context, token, baseURL string, opts ...Option) (*Client, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}

	base, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	o := clientOptions{timeout: DefaultTimeout, sleep: sleepContext}
	for _, opt := range opts {
		opt(&o)
	}

	if o.transport != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: o.transport})
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: "Bearer"},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = o.timeout

	logger.Info("Using GitLab API at: %s", base)

	return &Client{
		http:    tc,
		baseURL: base,
		limiter: newLimiter(o.rps),
		sleep:   o.sleep,
	}, nil
}

// BaseURL returns the normalised API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NormalizeBaseURL strips trailing slashes and appends /api/v4 when missing.
func NormalizeBaseURL(raw string) (string, error) {
	base := strings.TrimSpace(raw)
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimRight(base, "/")

	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}

	if !strings.HasSuffix(base, APIVersionPath) {
		logger.Info("Note: Appending '%s' to GitLab URL", APIVersionPath)
		base += APIVersionPath
	}
	return base, nil
}

// validateToken rejects credentials that cannot be sent in a header.
func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}
	if strings.IndexFunc(token, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || r > unicode.MaxASCII
	}) >= 0 {
		return fmt.Errorf("%w: token contains invalid characters", ErrInvalidToken)
	}
	return nil
}

// response is a fully read HTTP response.
type response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string
}

func (r *response) ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// get issues a GET to path with query parameters and reads the whole body.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		URL:        endpoint,
	}, nil
}
