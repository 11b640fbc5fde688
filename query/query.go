// Package query runs jq expressions over decoded API payloads.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Query is a compiled jq program. It is safe for concurrent use.
type Query struct {
	source string
	code   *gojq.Code
}

// Compile parses and compiles a jq expression
func Compile(expression string) (*Query, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, errors.New("empty jq expression")
	}

	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %w", expression, err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression %q: %w", expression, err)
	}

	return &Query{source: expression, code: code}, nil
}

// String returns the expression the query was compiled from
func (q *Query) String() string {
	return q.source
}

// Run evaluates the query against data and collects every emitted value.
// data may contain json.Number values as produced by the fff client.
func (q *Query) Run(data any) ([]any, error) {
	iter := q.code.Run(Normalize(data))

	var results []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq %q: %w", q.source, err)
		}
		results = append(results, v)
	}
	return results, nil
}

// Normalize converts json.Number values, which gojq rejects, into int or
// float64. Maps and slices are copied.
func Normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Normalize(val)
		}
		return out
	default:
		return v
	}
}
