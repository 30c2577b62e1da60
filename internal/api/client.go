package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rickgao/numbeo-prices/internal/version"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Client provides access to the Numbeo REST API.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration // zero keeps the HTTP client's own timeout
	http    *resty.Client
	logger  *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = resty.New().SetTimeout(DefaultTimeout)
	}
	if c.timeout > 0 {
		c.http.SetTimeout(c.timeout)
	}

	c.http.
		SetLogger(restyLogger{c.logger}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", version.UserAgent())

	return c
}

// WithTimeout sets the HTTP client timeout, including on a client passed
// with WithHTTPClient.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client. Its Timeout is kept unless
// WithTimeout is also given.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// restyLogger routes resty's internal messages to slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
