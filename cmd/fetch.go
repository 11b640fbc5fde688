package cmd

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/fffdata/fff"
)

// fetchAll calls fetch for every id with at most limit calls in flight.
// Results keep the order of ids; a nil entry means the API has no such
// resource. The first error cancels the remaining calls.
func fetchAll[T any](ctx context.Context, ids []int64, limit int, fetch func(ctx context.Context, id int64) (*T, error)) ([]*T, error) {
	results := make([]*T, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	// Create error group with limited concurrency
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, id := range ids {
		g.Go(func() error {
			v, err := fetch(ctx, id)
			if err != nil {
				return err
			}
			// Each goroutine owns its own slot
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// parseIdentifiers parses every argument as a match or club number
func parseIdentifiers(resource string, args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := fff.ParseIdentifier(resource, arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// notFound returns the ids whose result is nil
func notFound[T any](ids []int64, results []*T) []int64 {
	var missing []int64
	for i, v := range results {
		if v == nil {
			missing = append(missing, ids[i])
		}
	}
	return missing
}
