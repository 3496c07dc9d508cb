// Package transport is the client's HTTP layer over the REST envelope.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mealplanner/internal/errors"
)

// ErrNetwork marks failures where no HTTP response arrived.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx response decoded from the envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details json.RawMessage
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("http %d %s: %s", e.Status, e.Code, e.Message)
}

// IsServerError reports whether err is a 5xx APIError.
func IsServerError(err error) bool {
	apiErr, ok := errors.AsType[*APIError](err)

	return ok && apiErr.Status >= http.StatusInternalServerError
}

// IsUnavailable reports whether err means the server could not serve the request:
// a network failure or a 5xx response.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrNetwork) || IsServerError(err)
}

// TokenSource supplies and refreshes the bearer token. Refresh receives the token
// the server rejected so a source that has already rotated it can skip the exchange.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Refresh(ctx context.Context, rejected string) (string, error)
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// Client sends JSON requests and unwraps the envelope.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource makes the client authenticate and retry once after a refresh on 401/403.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New builds a Client for baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do sends body as JSON and decodes the envelope's data into out. Either may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return errors.Wrap(err, "marshal request body")
		}
	}

	return c.send(ctx, method, path, payload, out, false)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out any, isRetry bool) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var token string
	if c.tokens != nil {
		if token, err = c.tokens.Token(ctx); err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}

		return errors.WithStack(fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(fmt.Errorf("%w: read %s %s: %w", ErrNetwork, method, path, err))
	}

	if c.tokens != nil && !isRetry && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		c.logger.DebugContext(ctx, "Refreshing token after rejected request",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		if _, err := c.tokens.Refresh(ctx, token); err != nil {
			return err
		}

		return c.send(ctx, method, path, payload, out, true)
	}

	return decode(resp, raw, out)
}

func decode(resp *http.Response, raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrap(err, "decode response envelope")
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode response data")
	}

	return nil
}
