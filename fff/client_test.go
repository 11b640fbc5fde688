package fff

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()

	client, err := NewClient(zerolog.Nop(), append([]Option{WithBaseURL(baseURL)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient(logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.BaseURL())
		assert.Equal(t, DefaultTimeout, client.timeout)
		assert.Equal(t, DefaultUserAgent, client.userAgent)
		assert.True(t, client.ownsHTTP)
	})

	t.Run("trailing slash stripped", func(t *testing.T) {
		client, err := NewClient(logger, WithBaseURL("http://localhost:8080///"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.BaseURL())
	})

	t.Run("empty base URL", func(t *testing.T) {
		_, err := NewClient(logger, WithBaseURL("  "))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base URL is required")
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.timeout)
	})

	t.Run("non-positive timeout ignored", func(t *testing.T) {
		client, err := NewClient(logger, WithTimeout(0))
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, client.timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Same(t, custom, client.httpClient)
		assert.False(t, client.ownsHTTP)
	})
}

func TestClient_GetMatch(t *testing.T) {
	server, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/match_entities/28541157.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err)

		writeJSON(w, map[string]any{
			"ma_no":      28541157,
			"home":       map[string]any{"short_name": "PARIS FC"},
			"away":       map[string]any{"short_name": "RED STAR"},
			"home_score": 2,
			"away_score": 1,
			"status":     "A",
		})
	})

	client := newTestClient(t, server.URL+"/")

	match, err := client.GetMatch(context.Background(), 28541157)
	require.NoError(t, err)
	require.NotNil(t, match)
	require.NotNil(t, match.ID)
	assert.Equal(t, int64(28541157), *match.ID)
	assert.Equal(t, "PARIS FC vs RED STAR", match.Label())
	assert.Equal(t, "2 - 1", match.Score())
	assert.True(t, match.IsFinished())
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_GetClub(t *testing.T) {
	server, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clubs/10000.json", r.URL.Path)
		writeJSON(w, map[string]any{
			"cl_no":    10000,
			"name":     "PARIS SAINT-GERMAIN",
			"location": "PARIS",
			"contacts": []any{
				map[string]any{"type": "TEL", "value": "01 00 00 00 00"},
				map[string]any{"type": "MEL", "value": "contact@example.fr"},
			},
		})
	})

	client := newTestClient(t, server.URL)

	club, err := client.GetClub(context.Background(), 10000)
	require.NoError(t, err)
	require.NotNil(t, club)
	assert.Equal(t, int64(10000), *club.ID)
	assert.Equal(t, "PARIS SAINT-GERMAIN", club.Name)
	assert.Equal(t, []string{"01 00 00 00 00"}, club.PhoneNumbers())
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_NotFoundIsAbsence(t *testing.T) {
	server, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	for _, id := range []int64{1, 999999, 28541157} {
		match, err := client.GetMatch(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, match)
	}
	assert.Equal(t, int32(3), hits.Load())

	club, err := client.GetClub(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, club)
	assert.Equal(t, int32(4), hits.Load())
}

func TestClient_InvalidIdentifier(t *testing.T) {
	server, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	for _, id := range []int64{0, -1, -28541157} {
		match, err := client.GetMatch(ctx, id)
		assert.Nil(t, match)
		require.Error(t, err)
		assert.True(t, IsInvalidIdentifier(err))
		assert.ErrorIs(t, err, ErrFFF)

		club, err := client.GetClub(ctx, id)
		assert.Nil(t, club)
		var idErr *InvalidIdentifierError
		require.ErrorAs(t, err, &idErr)
		assert.Equal(t, "club", idErr.Resource)
	}

	assert.Equal(t, int32(0), hits.Load())
}

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "28541157", want: 28541157},
		{input: " 10000 ", want: 10000},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIdentifier("match", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidIdentifier(err))
				assert.Contains(t, err.Error(), "positive integer")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"bad request", http.StatusBadRequest},
		{"forbidden", http.StatusForbidden},
		{"internal error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tt.status)
			})
			client := newTestClient(t, server.URL)

			match, err := client.GetMatch(context.Background(), 1)
			assert.Nil(t, match)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, http.StatusText(tt.status), apiErr.Message)
			assert.Contains(t, apiErr.Body, "boom")
			assert.Equal(t, tt.status >= 500, apiErr.IsServerError())
			assert.ErrorIs(t, err, ErrFFF)
			assert.Equal(t, int32(1), hits.Load(), "no retries")
		})
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	t.Run("not JSON", func(t *testing.T) {
		server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>maintenance</html>"))
		})
		client := newTestClient(t, server.URL)

		_, err := client.GetMatch(context.Background(), 1)
		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, err.Error(), "not valid JSON")
		assert.ErrorIs(t, err, ErrFFF)
	})

	t.Run("empty body", func(t *testing.T) {
		server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		client := newTestClient(t, server.URL)

		_, err := client.GetClub(context.Background(), 1)
		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("array instead of object", func(t *testing.T) {
		server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, []any{1, 2})
		})
		client := newTestClient(t, server.URL)

		_, err := client.GetMatch(context.Background(), 1)
		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, err.Error(), "expected a JSON object")

		// raw access has no shape expectation
		data, err := client.Get(context.Background(), "/api/clubs/1/equipes.json")
		require.NoError(t, err)
		assert.Len(t, data, 2)
	})
}

func TestClient_TimeoutLeavesClientUsable(t *testing.T) {
	var calls atomic.Int32
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		writeJSON(w, map[string]any{"ma_no": 42, "home_score": 3})
	})

	client := newTestClient(t, server.URL, WithTimeout(50*time.Millisecond))
	ctx := context.Background()

	match, err := client.GetMatch(ctx, 42)
	assert.Nil(t, match)
	require.Error(t, err)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.True(t, connErr.Timeout)
	assert.True(t, IsTimeout(err))
	assert.Contains(t, err.Error(), "timeout")
	assert.ErrorIs(t, err, ErrFFF)

	match, err = client.GetMatch(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, int64(3), match.HomeScore)
}

func TestClient_RequestTimeoutOverride(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		writeJSON(w, map[string]any{"cl_no": 7})
	})

	client := newTestClient(t, server.URL, WithTimeout(20*time.Millisecond))

	club, err := client.GetClub(context.Background(), 7, WithRequestTimeout(5*time.Second))
	require.NoError(t, err)
	require.NotNil(t, club)
	assert.Equal(t, int64(7), *club.ID)
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := newTestClient(t, url)

	_, err := client.GetClub(context.Background(), 1)
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.False(t, connErr.Timeout)
	assert.Contains(t, err.Error(), "unable to connect")
	assert.Equal(t, url+"/api/clubs/1.json", connErr.URL)
}

func TestClient_Get(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/competitions/423015/phases/1/poules/2/classement.json":
			writeJSON(w, []any{map[string]any{"rank": 1}})
		default:
			http.NotFound(w, r)
		}
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	data, err := client.Get(ctx, "api/competitions/423015/phases/1/poules/2/classement.json")
	require.NoError(t, err)
	rows, ok := data.([]any)
	require.True(t, ok)
	assert.Len(t, rows, 1)

	data, err = client.Get(ctx, RefereePath(5))
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestClient_NullBodyReadsAsAbsence(t *testing.T) {
	server, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("null"))
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	data, err := client.Get(ctx, RefereePath(5))
	require.NoError(t, err)
	assert.Nil(t, data)

	match, err := client.GetMatch(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_Close(t *testing.T) {
	server, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ma_no": 1})
	})

	client, err := NewClient(zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close(), "second close is a no-op")

	_, err = client.GetMatch(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Equal(t, int32(0), hits.Load())
}

func TestWith(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"cl_no": 10000, "name": "PSG"})
	})
	ctx := context.Background()

	t.Run("closes after success", func(t *testing.T) {
		var captured *Client
		err := With(ctx, zerolog.Nop(), func(ctx context.Context, c *Client) error {
			captured = c
			club, err := c.GetClub(ctx, 10000)
			require.NoError(t, err)
			assert.Equal(t, "PSG", club.Name)
			return nil
		}, WithBaseURL(server.URL))
		require.NoError(t, err)
		assert.True(t, captured.closed.Load())
	})

	t.Run("closes after failure", func(t *testing.T) {
		sentinel := errors.New("stop")
		var captured *Client
		err := With(ctx, zerolog.Nop(), func(ctx context.Context, c *Client) error {
			captured = c
			return sentinel
		}, WithBaseURL(server.URL))
		assert.ErrorIs(t, err, sentinel)
		assert.True(t, captured.closed.Load())
	})

	t.Run("closes after panic", func(t *testing.T) {
		var captured *Client
		assert.Panics(t, func() {
			_ = With(ctx, zerolog.Nop(), func(ctx context.Context, c *Client) error {
				captured = c
				panic("boom")
			}, WithBaseURL(server.URL))
		})
		require.NotNil(t, captured)
		assert.True(t, captured.closed.Load())
	})
}
