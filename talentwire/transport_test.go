package talentwire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawResultSuccessful(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		r := &rawResult{statusCode: tt.statusCode}
		assert.Equal(t, tt.expected, r.successful(), "status %d", tt.statusCode)
	}
}

func TestRoundTripHeaderPrecedence(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	permanent := http.Header{}
	permanent.Set("X-Shared", "client-default")
	permanent.Set("X-Only-Permanent", "kept")

	tr := &transport{
		httpClient: server.Client(),
		baseURL:    server.URL,
		permanent:  permanent,
		logger:     zerolog.Nop(),
	}

	req := &apiRequest{method: http.MethodGet, path: "probe", header: http.Header{}}
	req.header.Set("X-Shared", "per-request")

	raw := tr.roundTrip(context.Background(), req)
	require.True(t, raw.successful())

	// Per-request values win over the permanent set.
	assert.Equal(t, "per-request", got.Get("X-Shared"))
	assert.Equal(t, "kept", got.Get("X-Only-Permanent"))
}

func TestRoundTripNeverErrors(t *testing.T) {
	tr := &transport{
		httpClient: &http.Client{Transport: errRoundTripper{err: refusedError{}}},
		baseURL:    "http://localhost:1",
		permanent:  http.Header{},
		logger:     zerolog.Nop(),
	}

	raw := tr.roundTrip(context.Background(), &apiRequest{method: http.MethodGet, path: "probe"})
	require.NotNil(t, raw)
	assert.True(t, raw.synthesized)
	assert.False(t, raw.successful())
	assert.Equal(t, http.StatusInternalServerError, raw.statusCode)
	assert.Contains(t, raw.status, "connection refused")
	assert.Empty(t, raw.body)
}

func TestSynthesizedResult(t *testing.T) {
	t.Run("timeout sentinel", func(t *testing.T) {
		raw := synthesizedResult(timeoutError{})
		assert.Equal(t, http.StatusRequestTimeout, raw.statusCode)
		assert.True(t, raw.synthesized)
	})

	t.Run("deadline exceeded sentinel", func(t *testing.T) {
		raw := synthesizedResult(context.DeadlineExceeded)
		assert.Equal(t, http.StatusRequestTimeout, raw.statusCode)
	})

	t.Run("generic failure sentinel", func(t *testing.T) {
		raw := synthesizedResult(refusedError{})
		assert.Equal(t, http.StatusInternalServerError, raw.statusCode)
		assert.Equal(t, "connection refused", raw.status)
	})
}

func TestRoundTripCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tr := &transport{
		httpClient: server.Client(),
		baseURL:    server.URL,
		permanent:  http.Header{},
		logger:     zerolog.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	raw := tr.roundTrip(ctx, &apiRequest{method: http.MethodGet, path: "probe"})
	assert.True(t, raw.synthesized)
	assert.False(t, raw.successful())
}
