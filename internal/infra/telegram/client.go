// Package telegram is a minimal Telegram Bot API client. It delivers chat
// messages for the registry and feeds inbound commands to the bot handler
// through long polling.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrAPIReturnedError indicates that the Bot API answered with ok=false.
var ErrAPIReturnedError = errors.New("telegram api error")

// response is the envelope of every Bot API answer.
type response struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

// Err returns an error wrapping ErrAPIReturnedError when the call failed.
func (r response) Err() error {
	if r.OK {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrAPIReturnedError, r.ErrorCode, r.Description)
}

// redactedError hides the bot token, which is part of every request URL,
// from transport errors.
type redactedError struct {
	err   error
	token string
}

func (e redactedError) Error() string {
	return strings.ReplaceAll(e.err.Error(), e.token, "<token>")
}

func (e redactedError) Unwrap() error {
	return e.err
}

// config holds the tunables of the client.
type config struct {
	apiURL      string        // Bot API base URL
	pollTimeout time.Duration // server-side wait of one getUpdates call
	sendClient  *http.Client  // HTTP client for sendMessage, nil to share the main one
}

// Option configures the client.
type Option func(*config)

// WithAPIURL sets the Bot API base URL. Default: https://api.telegram.org.
func WithAPIURL(url string) Option {
	return func(c *config) {
		c.apiURL = url
	}
}

// WithPollTimeout sets how long one getUpdates call waits for new updates.
// The HTTP client timeout must be longer. Default: 30s.
func WithPollTimeout(d time.Duration) Option {
	return func(c *config) {
		c.pollTimeout = d
	}
}

// WithSendClient sets the HTTP client used for sendMessage. It should only
// retry failures where Telegram cannot have delivered the message, otherwise
// a lost response produces a duplicate. Default: the main HTTP client.
func WithSendClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.sendClient = httpClient
	}
}

// client talks to the Bot API with the given HTTP client.
type client struct {
	cfg        config
	token      string
	httpClient *http.Client
	sendClient *http.Client // used for sendMessage, which is not safe to repeat
}

// NewClient returns a Bot API client authenticated by token.
func NewClient(httpClient *http.Client, token string, opts ...Option) *client {
	cfg := config{
		apiURL:      "https://api.telegram.org",
		pollTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sendClient := cfg.sendClient
	if sendClient == nil {
		sendClient = httpClient
	}

	return &client{
		cfg:        cfg,
		token:      token,
		httpClient: httpClient,
		sendClient: sendClient,
	}
}

// call invokes method through the main HTTP client.
func (c *client) call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	return c.post(ctx, c.httpClient, method, payload)
}

// post invokes method with payload encoded as JSON through httpClient and
// returns the raw result.
func (c *client) post(ctx context.Context, httpClient *http.Client, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimRight(c.cfg.apiURL, "/") + "/bot" + c.token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, redactedError{err: err, token: c.token}
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%s: decoding response (status %d): %w", method, res.StatusCode, err)
	}

	return data.Result, data.Err()
}
