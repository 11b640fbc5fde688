package fff

import (
	"context"
)

// API defines the read operations of the FFF client
type API interface {
	// GetMatch fetches a match; (nil, nil) means it does not exist
	GetMatch(ctx context.Context, matchNumber int64, opts ...RequestOption) (*Match, error)

	// GetClub fetches a club; (nil, nil) means it does not exist
	GetClub(ctx context.Context, clubNumber int64, opts ...RequestOption) (*Club, error)

	// Get fetches any API path and returns the decoded JSON value
	Get(ctx context.Context, path string, opts ...RequestOption) (any, error)

	// Close releases the underlying connections
	Close() error
}

var _ API = (*Client)(nil)
