// Package api is the typed HTTP client for the calendar backend: token-based
// auth plus task list/create/delete. The core never talks to it directly; it
// only consumes the snapshots this client returns.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/tempo/pkg/task"
)

// DefaultBaseURL matches the development backend.
const DefaultBaseURL = "http://localhost:5000/api"

// Client talks to the backend. It is safe for sequential CLI use; retries and
// timeouts live here, not in the core.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
	log     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithToken sets the bearer token sent on authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the request/response debug logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the given base URL ("http://host:port/api").
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken updates the bearer token after login.
func (c *Client) SetToken(token string) { c.token = token }

// Login exchanges credentials for a session token and user identity.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return nil, err
	}
	if env.User == nil || env.Token == "" {
		return nil, fmt.Errorf("api: login response missing token or user")
	}
	c.token = env.Token
	return &Session{Token: env.Token, User: *env.User}, nil
}

// Register creates an account. The backend issues a token immediately, so a
// successful registration doubles as a login.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/auth/register", body)
	if err != nil {
		return nil, err
	}
	if env.User == nil || env.Token == "" {
		return nil, fmt.Errorf("api: register response missing token or user")
	}
	c.token = env.Token
	return &Session{Token: env.Token, User: *env.User}, nil
}

// Me returns the identity behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, fmt.Errorf("api: me response missing user")
	}
	return env.User, nil
}

// List fetches the authoritative task snapshot for the current user. Records
// with malformed dates are dropped with a warning rather than failing the
// whole snapshot.
func (c *Client) List(ctx context.Context) ([]task.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}
	tasks := make([]task.Task, 0, len(env.Tasks))
	for _, w := range env.Tasks {
		t, err := w.toTask()
		if err != nil {
			c.log.Warn().Str("id", coalesce(w.ID, w.LegacyID)).Str("date", w.Date).
				Msg("dropping task with malformed date")
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Create validates the draft locally, then submits it. The returned task
// carries the backend-assigned ID.
func (c *Client) Create(ctx context.Context, draft task.Draft) (*task.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	body := map[string]string{
		"title":     draft.Title,
		"date":      draft.Date,
		"startTime": draft.Start,
		"endTime":   draft.End,
		"desc":      draft.Desc,
	}
	env, err := c.do(ctx, http.MethodPost, "/tasks", body)
	if err != nil {
		return nil, err
	}
	if env.Task == nil {
		return nil, fmt.Errorf("api: create response missing task")
	}
	created, err := env.Task.toTask()
	if err != nil {
		return nil, fmt.Errorf("api: create returned malformed task: %w", err)
	}
	return &created, nil
}

// Delete removes a task by ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("sending request")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("api: decode response: %w", err)
	}

	c.log.Debug().Str("method", method).Str("path", path).
		Int("status", resp.StatusCode).Bool("success", env.Success).Msg("received response")

	if resp.StatusCode >= 300 || !env.Success {
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}
	return env, nil
}
