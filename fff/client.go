package fff

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Client wraps the FFF DOFA API
type Client struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	ownsHTTP   bool
	logger     zerolog.Logger
	closed     atomic.Bool
}

// NewClient creates a new FFF client
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Ensure base URL ends without slash
	baseURL := strings.TrimRight(strings.TrimSpace(o.baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("fff base URL is required")
	}

	client := &Client{
		baseURL:    baseURL,
		timeout:    o.timeout,
		userAgent:  o.userAgent,
		httpClient: o.httpClient,
		logger:     logger,
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
		client.ownsHTTP = true
	}

	return client, nil
}

// With creates a client, passes it to fn and closes it once fn returns,
// including when fn fails or panics.
func With(ctx context.Context, logger zerolog.Logger, fn func(ctx context.Context, c *Client) error, opts ...Option) error {
	c, err := NewClient(logger, opts...)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(ctx, c)
}

// BaseURL returns the normalized base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetMatch fetches the entities of a match.
//
// It returns (nil, nil) when the API has no such match.
func (c *Client) GetMatch(ctx context.Context, matchNumber int64, opts ...RequestOption) (*Match, error) {
	if err := validateIdentifier("match", matchNumber); err != nil {
		return nil, err
	}

	obj, err := c.getObject(ctx, MatchEntitiesPath(matchNumber), opts...)
	if err != nil || obj == nil {
		return nil, err
	}

	return MatchFromObject(obj), nil
}

// GetClub fetches a club.
//
// It returns (nil, nil) when the API has no such club.
func (c *Client) GetClub(ctx context.Context, clubNumber int64, opts ...RequestOption) (*Club, error) {
	if err := validateIdentifier("club", clubNumber); err != nil {
		return nil, err
	}

	obj, err := c.getObject(ctx, ClubPath(clubNumber), opts...)
	if err != nil || obj == nil {
		return nil, err
	}

	return ClubFromObject(obj), nil
}

// Get issues a GET for an arbitrary API path, such as one built by the
// endpoint helpers, and returns the decoded JSON value. A nil value with a
// nil error means the resource does not exist, or that a 2xx response
// carried a JSON null body; the two cases are not told apart.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.do(ctx, http.MethodGet, path, opts...)
}

// Close releases idle connections. Calling it more than once is a no-op.
// A closed client must not be reused; its calls return ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.ownsHTTP {
		c.httpClient.CloseIdleConnections()
	}
	c.logger.Debug().Msg("FFF client closed")
	return nil
}

func (c *Client) getObject(ctx context.Context, path string, opts ...RequestOption) (Object, error) {
	data, err := c.do(ctx, http.MethodGet, path, opts...)
	if err != nil || data == nil {
		return nil, err
	}

	obj, ok := AsObject(data)
	if !ok {
		return nil, &MalformedResponseError{
			URL:    c.baseURL + path,
			Reason: fmt.Sprintf("expected a JSON object, got %T", data),
		}
	}
	return obj, nil
}

// ParseIdentifier parses a textual match or club number with the same rule
// the client applies before sending a request.
func ParseIdentifier(resource, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, &InvalidIdentifierError{Resource: resource, Value: s}
	}
	return n, nil
}

func validateIdentifier(resource string, n int64) error {
	if n <= 0 {
		return &InvalidIdentifierError{Resource: resource, Value: strconv.FormatInt(n, 10)}
	}
	return nil
}
