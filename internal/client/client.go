package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lucsky/cuid"
	"go.uber.org/zap"

	"github.com/tastebud-labs/foodadmin/internal/logger"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// Config is the explicit per-client configuration: no ambient global
// token or base URL anywhere else in the program.
type Config struct {
	BaseURL string
	Token   string
}

// Outcome is the canonical success contract every endpoint is adapted
// to. The API signals success inconsistently (a literal message string
// on some endpoints, a boolean `success` field on others); the quirks
// are kept per endpoint and normalized here at the boundary.
type Outcome struct {
	OK      bool
	Message string
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.SugaredLogger
}

// New builds a client. Timeouts are left to the transport's defaults;
// cancellation is carried by the context of each call.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.Token == "" {
		return nil, xerrors.ErrConfiguration
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  logger.GetLogger(),
	}, nil
}

// envelope is the API's response wrapper, with both success-signaling
// shapes present as optional fields.
type envelope struct {
	Message string `json:"message"`
	Success *bool  `json:"success"`
}

var authExpiredPhrases = []string{
	"Session expired",
	"Not authorized, token failed",
	"Un-Authorized",
}

func authExpired(message string) bool {
	for _, phrase := range authExpiredPhrases {
		if strings.Contains(message, phrase) {
			return true
		}
	}
	return false
}

// do issues a request with the bearer token and a correlation id, and
// returns the raw body and status. Transport failures and expired
// sessions come back as errors; API-level failures are left to the
// caller to interpret against its endpoint's success shape.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return 0, nil, xerrors.Wrap(err, "building request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("X-Request-ID", cuid.New())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("request failed", "method", method, "path", path, "error", err)
		return 0, nil, &xerrors.RemoteError{Op: path, Message: "", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &xerrors.RemoteError{Op: path, Message: "", Err: err}
	}

	if env := decodeEnvelope(data); authExpired(env.Message) {
		return resp.StatusCode, data, fmt.Errorf("%s: %w", path, xerrors.ErrAuthExpired)
	}
	return resp.StatusCode, data, nil
}

func (c *Client) get(ctx context.Context, path, fallback string, out any) error {
	status, data, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return xerrors.Remote(path, decodeEnvelope(data).Message, fallback, nil)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return xerrors.Remote(path, "", fallback, err)
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, xerrors.Wrap(err, "encoding payload")
	}
	return c.do(ctx, method, path, bytes.NewReader(body), "application/json")
}

func decodeEnvelope(data []byte) envelope {
	var env envelope
	// Not every response carries the wrapper; a failed decode just
	// leaves it empty.
	_ = json.Unmarshal(data, &env)
	return env
}

// messageOutcome adapts endpoints whose success signal is a literal
// message string.
func messageOutcome(data []byte, expected, fallback string) Outcome {
	env := decodeEnvelope(data)
	if env.Message == expected {
		return Outcome{OK: true, Message: env.Message}
	}
	msg := env.Message
	if msg == "" {
		msg = fallback
	}
	return Outcome{OK: false, Message: msg}
}

// successOutcome adapts endpoints whose success signal is a boolean
// `success` field.
func successOutcome(data []byte, okMessage, fallback string) Outcome {
	env := decodeEnvelope(data)
	if env.Success != nil && *env.Success {
		msg := env.Message
		if msg == "" {
			msg = okMessage
		}
		return Outcome{OK: true, Message: msg}
	}
	msg := env.Message
	if msg == "" {
		msg = fallback
	}
	return Outcome{OK: false, Message: msg}
}
