package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"opskit/pkg/log"
	"opskit/pkg/models"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	contentTypeJSON = "application/json"
	// Upper bound on how much of an error body is kept in HTTPStatusError.
	maxErrorBodySize = 64 * 1024
)

// Client is a JSON REST client bound to a single base URL.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL string
	headers http.Header
	client  *retryablehttp.Client
	logger  zerolog.Logger
}

// New creates a client for baseURL. When token is not empty every request carries
// an "Authorization: Bearer <token>" header. A zero timeout leaves requests unbounded.
func New(baseURL, token string, timeout time.Duration, logger zerolog.Logger) *Client {
	headers := make(http.Header)
	headers.Set("Accept", contentTypeJSON)
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
		headers.Set("Content-Type", contentTypeJSON)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		client:  createClient(timeout, logger),
		logger:  logger,
	}
}

// createClient builds the underlying retryablehttp client with retries disabled.
func createClient(timeout time.Duration, logger zerolog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.HTTPClient.Timeout = timeout
	client.Logger = log.NewRetryableLogger(logger)
	client.CheckRetry = noRetryPolicy
	// Keep the last response (or transport error) instead of the generic "giving up" error.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// noRetryPolicy never retries: responses are returned as-is and transport errors surface immediately.
func noRetryPolicy(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return false, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins endpoint to the base URL with exactly one separating slash.
func (c *Client) URL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.client.HTTPClient.CloseIdleConnections()
}

// Get requests endpoint with optional query parameters and decodes the JSON response.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (models.Value, error) {
	target := c.URL(endpoint)
	if len(query) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}
		target += separator + query.Encode()
	}

	return c.doJSON(ctx, http.MethodGet, target, nil)
}

// Post sends body as JSON to endpoint and decodes the JSON response.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (models.Value, error) {
	return c.doJSON(ctx, http.MethodPost, c.URL(endpoint), body)
}

// Put sends body as JSON to endpoint and decodes the JSON response.
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) (models.Value, error) {
	return c.doJSON(ctx, http.MethodPut, c.URL(endpoint), body)
}

// Delete issues a DELETE for endpoint. The response body is discarded.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, c.URL(endpoint), nil)
	return err
}

// doJSON performs a request and decodes the response body into a Value.
func (c *Client) doJSON(ctx context.Context, method, target string, body interface{}) (models.Value, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return models.Null(), fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	respBody, err := c.doRequest(ctx, method, target, payload)
	if err != nil {
		return models.Null(), err
	}

	value, err := models.ParseValue(respBody)
	if err != nil {
		c.logger.Error().Str("method", method).Str("url", target).Err(err).Msg("Failed to decode response body")
		return models.Null(), &DecodeError{Method: method, URL: target, Err: err}
	}

	return value, nil
}

// doRequest performs an HTTP request and returns the body of a successful response.
func (c *Client) doRequest(ctx context.Context, method, target string, body io.Reader) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for key, values := range c.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Str("method", method).Str("url", target).Err(err).Msg("Request failed")
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn().Err(closeErr).Msg("Failed to close response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Str("method", method).Str("url", target).Err(err).Msg("Failed to read response body")
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Request completed")

	if resp.StatusCode >= http.StatusBadRequest {
		if len(respBody) > maxErrorBodySize {
			respBody = respBody[:maxErrorBodySize]
		}
		c.logger.Error().
			Str("method", method).
			Str("url", target).
			Int("status", resp.StatusCode).
			Msg("Request returned error status")
		return nil, &HTTPStatusError{Method: method, URL: target, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
