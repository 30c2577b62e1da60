package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/rickgao/numbeo-prices/internal/config"
)

// Sentinels for errors.Is classification.
var (
	ErrTransport = errors.New("numbeo transport error")
	ErrResponse  = errors.New("numbeo response error")
)

// APIError represents a non-success status or an unusable body from the Numbeo API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("numbeo api error %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is ErrResponse.
func (e *APIError) Is(target error) bool {
	return target == ErrResponse
}

// TransportError represents a request that never produced an HTTP response.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("numbeo request %s failed: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// errorBody is embedded in every response; Numbeo reports some failures
// as {"error": "..."} with a 200 status.
type errorBody struct {
	Error string `json:"error"`
}

// requireKey fails before any network call when no API key is configured.
func (c *Client) requireKey() error {
	if strings.TrimSpace(c.apiKey) == "" {
		return &config.Error{Field: "api key", Message: "is required (pass --api-key or set " + config.EnvAPIKey + " in .env)"}
	}
	return nil
}

// doRequest performs a single GET against path and returns the status and raw body.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	params := url.Values{}
	for k, v := range query {
		params[k] = v
	}
	params.Set("api_key", c.apiKey)

	requestID := uuid.NewString()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetQueryParamsFromValues(params).
		Get(c.baseURL + path)
	if err != nil {
		return 0, nil, &TransportError{Path: path, Err: redactURLError(err)}
	}

	c.logger.Debug("numbeo request",
		"request_id", requestID,
		"path", path,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
		"bytes", len(resp.Body()),
	)

	body := resp.Body()
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return resp.StatusCode(), nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			Body:       body,
		}
	}

	return resp.StatusCode(), body, nil
}

// get performs a GET request and decodes the JSON body into result.
// It returns the status and raw body so callers can attach them to
// validation failures.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) (int, []byte, error) {
	status, body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return status, body, err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return status, body, &APIError{
			StatusCode: status,
			Message:    fmt.Sprintf("unmarshal response: %v", err),
			Body:       body,
		}
	}

	var apiErr errorBody
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return status, body, &APIError{
			StatusCode: status,
			Message:    apiErr.Error,
			Body:       body,
		}
	}

	return status, body, nil
}

// redactURLError strips the api_key query parameter from errors that embed the request URL.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	redacted := *urlErr
	redacted.URL = RedactURL(urlErr.URL)
	return &redacted
}

// RedactURL replaces the api_key query value in raw with "REDACTED".
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Get("api_key") == "" {
		return raw
	}
	q.Set("api_key", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}
