// Package client is the high-level facade over the finance service:
// one Client is one session, owning the bearer token obtained at login
// and exposing the typed list operations.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"easyfin/internal/api"
	"easyfin/internal/log"
	"easyfin/internal/transport"
)

var (
	// ErrNotAuthenticated is returned before any network I/O when an
	// authenticated operation runs on a client without a token.
	ErrNotAuthenticated = errors.New("client is not authenticated: call Login first")

	// ErrBlankToken is returned by SetToken for empty or
	// whitespace-only values.
	ErrBlankToken = errors.New("token must not be empty or whitespace")
)

// Client is one session against the service. The token is written once
// by a successful Login (or SetToken) and only read afterwards, so
// concurrent calls on one Client are safe; there is no logout, a fresh
// Client starts unauthenticated.
type Client struct {
	transport *transport.Client
	logger    *log.Logger
	token     string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default transport, mainly for tests and
// for sharing a configured transport with body logging enabled.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger replaces the default client logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates an unauthenticated Client for the service at serviceURI.
func New(serviceURI string, opts ...Option) *Client {
	c := &Client{
		logger: log.New(log.Config{Component: log.ComponentClient}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.New(serviceURI)
	}
	return c
}

// Login authenticates with the password grant and stores the access
// token. It is a yes/no gate: every failure mode — unreachable host,
// non-2xx status, undecodable body, nonzero service error code, blank
// access token — collapses to false and the token stays empty. All
// other operations propagate their failures instead.
func (c *Client) Login(ctx context.Context, username, password, clientID, clientSecret string) bool {
	res, _, err := transport.Get[api.AuthResult](ctx, c.transport,
		api.Authenticate(username, password, clientID, clientSecret))
	if err != nil {
		c.logger.Debug("login failed", log.FieldError, err.Error())
		return false
	}
	if res.Error.Code != 0 {
		c.logger.Debug("login rejected",
			log.FieldErrorCode, res.Error.Code,
			log.FieldError, res.Error.Message)
		return false
	}
	if strings.TrimSpace(res.AccessToken) == "" {
		c.logger.Debug("login returned no access token")
		return false
	}
	// res.RefreshToken is issued by the service but there is no
	// refresh flow; it is dropped here.
	c.token = res.AccessToken
	return true
}

// Token returns the stored session token, empty while unauthenticated.
func (c *Client) Token() string {
	return c.token
}

// SetToken installs an externally obtained session token. Blank values
// are rejected and the stored token is left untouched: a session cannot
// be cleared by assignment, only a new Client starts unauthenticated.
func (c *Client) SetToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrBlankToken
	}
	c.token = token
	return nil
}

// AccountGroups fetches the BalanceList envelope. The envelope is
// returned as decoded, its Error field included: a nonzero service
// error code is the caller's to interpret, only transport-level
// failures become Go errors.
func (c *Client) AccountGroups(ctx context.Context) (*api.BalanceEnvelope, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	env, _, err := transport.Get[api.BalanceEnvelope](ctx, c.transport, api.BalanceList(c.token))
	if err != nil {
		return nil, fmt.Errorf("list account groups: %w", err)
	}
	return env, nil
}

// Accounts flattens every group's account list into one slice, group
// order first, within-group order second. Accounts sharing an id pass
// through undeduplicated.
func (c *Client) Accounts(ctx context.Context) ([]api.Account, error) {
	env, err := c.AccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	var accounts []api.Account
	for _, g := range env.Groups {
		accounts = append(accounts, g.Accounts...)
	}
	return accounts, nil
}

// Categories fetches the CategoryList envelope; same contract as
// AccountGroups.
func (c *Client) Categories(ctx context.Context) (*api.CategoryEnvelope, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	env, _, err := transport.Get[api.CategoryEnvelope](ctx, c.transport, api.CategoryList(c.token))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return env, nil
}

// Transactions fetches the TransactionList envelope. A nil topCount
// omits TopCount from the request; any non-nil value is passed through
// verbatim, zero and negatives included.
func (c *Client) Transactions(ctx context.Context, topCount *int) (*api.TransactionEnvelope, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	env, _, err := transport.Get[api.TransactionEnvelope](ctx, c.transport,
		api.TransactionList(c.token, topCount))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return env, nil
}

func (c *Client) requireAuth() error {
	if c.token == "" {
		return ErrNotAuthenticated
	}
	return nil
}
