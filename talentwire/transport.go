package talentwire

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// rawResult is the uniform outcome of one HTTP exchange. When the exchange
// could not complete at all, a result is synthesized with a sentinel status
// so downstream layers treat "the server never answered" and "the server
// answered with an error" identically.
type rawResult struct {
	statusCode  int
	status      string
	header      http.Header
	body        []byte
	synthesized bool
}

// successful reports whether the status code is in [200,299]. Every layer
// branches on this one predicate.
func (r *rawResult) successful() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

type transport struct {
	httpClient *http.Client
	baseURL    string
	permanent  http.Header
	logger     zerolog.Logger
}

// roundTrip performs a single HTTP exchange. It never returns an error:
// transport-level failures come back as synthesized results.
func (t *transport) roundTrip(ctx context.Context, req *apiRequest) *rawResult {
	var bodyReader io.Reader
	if req.body != nil {
		bodyReader = bytes.NewReader(req.body)
	}

	target := joinURL(t.baseURL, req.path)
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, bodyReader)
	if err != nil {
		return synthesizedResult(err)
	}

	// Client defaults first, then per-request values, so a per-request
	// header is never overridden by the permanent set.
	for name, values := range t.permanent {
		httpReq.Header[name] = append([]string(nil), values...)
	}
	for name, values := range req.header {
		httpReq.Header[name] = append([]string(nil), values...)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		t.logger.Debug().Str("method", req.method).Str("url", target).Err(err).
			Msg("request failed before a response existed")
		return synthesizedResult(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return synthesizedResult(err)
	}

	t.logger.Debug().
		Str("method", req.method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request complete")

	return &rawResult{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		header:     resp.Header,
		body:       body,
	}
}

// synthesizedResult converts a transport-level failure into a
// response-shaped result: sentinel status code, failure text as the status
// description, empty body.
func synthesizedResult(err error) *rawResult {
	statusCode := http.StatusInternalServerError
	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		statusCode = http.StatusRequestTimeout
	}
	return &rawResult{
		statusCode:  statusCode,
		status:      err.Error(),
		header:      http.Header{},
		synthesized: true,
	}
}
