// Package transport executes single HTTP exchanges against the finance
// service and decodes JSON envelopes. It knows nothing about sessions
// or envelope error codes; that is the client's job.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"easyfin/internal/api"
	"easyfin/internal/log"
)

// Client executes one GET per call against the service base URL. It
// holds no per-call state beyond the shared http.Client, so a single
// instance is safe for concurrent use; cancelling one call's context
// aborts only that call.
type Client struct {
	baseURL   string
	http      *http.Client
	logger    *log.Logger
	logBodies bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger replaces the default transport logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithBodyLogging enables verbatim request-URL and response-body
// logging at Debug level. Bodies and query strings carry credentials
// and tokens; keep this off outside local debugging.
func WithBodyLogging() Option {
	return func(c *Client) { c.logBodies = true }
}

// New creates a transport Client for the given service base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newPooledHTTPClient(),
		logger:  log.New(log.Config{Component: log.ComponentTransport}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newPooledHTTPClient builds the shared http.Client. Connect, TLS and
// read timeouts are fixed at 30s process-wide; per-call deadlines come
// from the caller's context.
func newPooledHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   30 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}

// Status is the raw HTTP status of a completed exchange.
type Status struct {
	Code   int
	Reason string
}

// StatusError reports a transport-successful response with a non-2xx
// status. The numeric code is recoverable by callers via errors.As and
// is also part of the message.
type StatusError struct {
	Code   int
	Status string // full status line, e.g. "404 Not Found"
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %s", e.Status)
}

// DecodeError reports a 2xx response whose body is empty, not JSON, or
// does not match the expected envelope. Distinct from StatusError so
// callers can tell a bad payload from a bad status.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Get executes req and decodes the response body into T. Failure kinds
// stay distinct: network failures come back wrapping the underlying
// *url.Error, non-2xx statuses as *StatusError, undecodable bodies as
// *DecodeError. No retries happen at this layer.
func Get[T any](ctx context.Context, c *Client, req api.Request) (*T, Status, error) {
	u := c.requestURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, Status{}, fmt.Errorf("build request %s: %w", req.Path, err)
	}

	if c.logBodies {
		c.logger.Debug("request", log.FieldPath, req.Path, log.FieldBody, u)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("request failed",
			log.FieldPath, req.Path,
			log.FieldError, err.Error())
		return nil, Status{}, fmt.Errorf("request %s: %w", req.Path, err)
	}
	defer resp.Body.Close()

	status := Status{Code: resp.StatusCode, Reason: reasonPhrase(resp)}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, status, fmt.Errorf("read response %s: %w", req.Path, err)
	}

	if c.logBodies {
		c.logger.Debug("response",
			log.FieldPath, req.Path,
			log.FieldStatusCode, resp.StatusCode,
			log.FieldBody, string(body))
	}
	c.logger.Debug("request done",
		log.FieldPath, req.Path,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, status, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, status, &DecodeError{Err: err}
	}
	return &out, status, nil
}

// requestURL renders "<base>/<path>?<params>" keeping the declared
// parameter order, which url.Values would not.
func (c *Client) requestURL(req api.Request) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteByte('/')
	b.WriteString(req.Path)
	for i, p := range req.Params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
