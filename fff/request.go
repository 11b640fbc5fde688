package fff

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request identifier, also logged as request_id.
const RequestIDHeader = "X-Request-Id"

// maxErrorBody caps how much of an error response is kept on APIError.
const maxErrorBody = 4096

// do performs an HTTP request against the API and decodes the JSON body.
//
// A 404 response yields (nil, nil), as does a 2xx response whose body is
// JSON null. Any other non-2xx status yields an *APIError, transport
// failures a *ConnectionError and an undecodable body a
// *MalformedResponseError. Nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, opts ...RequestOption) (any, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	ro := requestOptions{timeout: c.timeout}
	for _, opt := range opts {
		opt(&ro)
	}

	url := c.baseURL + path

	ctx, cancel := context.WithTimeout(ctx, ro.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("request_id", requestID).
			Str("method", method).
			Str("url", url).
			Dur("duration", time.Since(start)).
			Msg("FFF API request failed")
		return nil, &ConnectionError{URL: url, Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{URL: url, Timeout: isTimeout(err), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("FFF API request")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, &MalformedResponseError{URL: url, Reason: "body is not valid JSON", Err: err}
	}
	if dec.More() {
		return nil, &MalformedResponseError{URL: url, Reason: "trailing data after JSON value"}
	}

	return data, nil
}

// isTimeout separates deadline expiry from other transport failures.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
