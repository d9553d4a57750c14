package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/open-inwoner/openklant/internal/auth"
	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Request describes one API call. Path is either relative to the base URL, in
// escaped form, or an absolute URL, which is used verbatim (pagination
// locators).
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read HTTP response. Status codes are not interpreted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends authenticated JSON requests to one API.
type Client struct {
	baseURL      *url.URL
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       openklant.Logger
	debug        bool
	userAgent    string
	metrics      MetricsProvider
	timeout      time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger openklant.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each round trip. It is applied after every other
// option, so it also holds for a client installed with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryConfig enables retries of connection errors and 5xx responses.
// Only GET requests are retried; 4xx responses, 429 included, never are.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. to install a
// custom transport. Its own Timeout is kept unless WithTimeout is given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithMetrics records request counts and latencies.
func WithMetrics(metrics MetricsProvider) Option {
	return func(c *Client) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

type noRetryKey struct{}

// NewClient creates a client for baseURL. tokenManager may be nil for
// unauthenticated access. baseURL must be an absolute URL.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		parsed = &url.URL{Path: baseURL}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = checkRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      parsed,
		tokenManager: tokenManager,
		httpClient:   retryClient,
		logger:       openklant.NoopLogger{},
		userAgent:    constants.DefaultUserAgent,
		metrics:      noopMetrics{},
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	retryClient.RequestLogHook = client.logRetry

	return client
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if noRetry, _ := ctx.Value(noRetryKey{}).(bool); noRetry {
		return false, nil
	}

	if err == nil && resp != nil && resp.StatusCode < http.StatusInternalServerError {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	c.logger.Warn("Retrying HTTP request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

// Do sends req and reads the full response. Only failures to obtain a
// response are returned as errors, as *openklant.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.resolve(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var body []byte
	if req.Body != nil {
		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		ctx = context.WithValue(ctx, noRetryKey{}, true)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyOrNil(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req, body != nil)
	if err != nil {
		return nil, err
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"body":   string(body),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.ObserveRequest(req.Method, "error", time.Since(start))

		return nil, &openklant.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.metrics.ObserveRequest(req.Method, "error", time.Since(start))

		return nil, &openklant.TransportError{Method: req.Method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	duration := time.Since(start)
	c.metrics.ObserveRequest(req.Method, strconv.Itoa(httpResp.StatusCode), duration)

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   req.Method,
			"url":      fullURL,
			"status":   httpResp.StatusCode,
			"duration": duration.String(),
			"body":     string(respBody),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request, hasBody bool) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting auth token: %w", err)
		}

		if token.Valid() {
			httpReq.Header.Set("Authorization", token.Header())
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

// resolve joins path onto the base URL. Absolute URLs are accepted only for
// the base URL's scheme and host so the token is never sent elsewhere.
func (c *Client) resolve(path string, query url.Values) (string, error) {
	var target *url.URL

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		parsed, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("parsing URL %q: %w", path, err)
		}

		if !strings.EqualFold(parsed.Scheme, c.baseURL.Scheme) || !strings.EqualFold(parsed.Host, c.baseURL.Host) {
			return "", fmt.Errorf("%w: %s", openklant.ErrForeignURL, path)
		}

		target = parsed
	} else {
		// path is in escaped form, so an escaped segment stays one segment.
		rawPath := strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimPrefix(path, "/")

		unescaped, err := url.PathUnescape(rawPath)
		if err != nil {
			return "", fmt.Errorf("parsing path %q: %w", path, err)
		}

		joined := *c.baseURL
		joined.Path = unescaped
		joined.RawPath = rawPath
		target = &joined
	}

	if len(query) > 0 {
		merged := target.Query()
		for key, values := range query {
			merged[key] = values
		}

		target.RawQuery = merged.Encode()
	}

	return target.String(), nil
}

func bodyOrNil(body []byte) interface{} {
	if body == nil {
		return nil
	}

	return bytes.NewReader(body)
}
