package talentwire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.3.0"

const defaultTimeout = 30 * time.Second

// Credential headers sent on every call.
const (
	headerAccountID  = "TW-AccountId"
	headerServiceKey = "TW-ServiceKey"
)

// Client is a TalentWire API client. It is stateless across calls beyond its
// configuration, so one instance can serve concurrent callers; the debug
// flag is fixed at construction and never mutated afterwards.
type Client struct {
	accountID  string
	serviceKey string
	dataCenter DataCenter
	debug      bool
	transport  *transport
	logger     zerolog.Logger
}

// NewClient creates a client for the given account credentials and data
// center. Extra headers supplied through options are validated here, before
// any request is made.
func NewClient(accountID, serviceKey string, dataCenter DataCenter, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	if serviceKey == "" {
		return nil, fmt.Errorf("service key is required")
	}
	if dataCenter.root == "" {
		return nil, fmt.Errorf("data center is required")
	}

	options := clientOptions{
		timeout:   defaultTimeout,
		userAgent: "talentwire-go/" + Version,
	}
	for _, opt := range opts {
		opt(&options)
	}

	permanent := http.Header{}
	permanent.Set(headerAccountID, accountID)
	permanent.Set(headerServiceKey, serviceKey)
	permanent.Set("Accept", "application/json")
	permanent.Set("User-Agent", options.userAgent)
	for name, value := range options.extraHeaders {
		if err := setExtraHeader(permanent, name, value); err != nil {
			return nil, err
		}
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		accountID:  accountID,
		serviceKey: serviceKey,
		dataCenter: dataCenter,
		debug:      options.debug,
		logger:     logger,
		transport: &transport{
			httpClient: httpClient,
			baseURL:    dataCenter.root,
			permanent:  permanent,
			logger:     logger,
		},
	}, nil
}

// AccountID returns the account the client was built for.
func (c *Client) AccountID() string { return c.accountID }

// DataCenter returns the environment the client talks to.
func (c *Client) DataCenter() DataCenter { return c.dataCenter }

// call performs one request/response cycle and translates every failure
// class into a typed error.
func call[T any](ctx context.Context, c *Client, req *apiRequest) (*Response[T], error) {
	raw := c.transport.roundTrip(ctx, req)
	res := decode[T](raw)

	switch {
	case !raw.successful():
		return nil, c.apiError(raw, res.rawBody, req)
	case res.decodeErr != nil:
		apiErr := &APIError{
			StatusCode:  raw.statusCode,
			Status:      raw.status,
			Message:     "JSON deserialization error: " + res.decodeErr.Error(),
			RawResponse: res.rawBody,
		}
		c.attachRequestBody(apiErr, req)
		return nil, apiErr
	case res.payload == nil:
		apiErr := &APIError{
			StatusCode: raw.statusCode,
			Status:     raw.status,
			Message:    fmt.Sprintf("unexpected response content type %q", raw.header.Get("Content-Type")),
		}
		c.attachRequestBody(apiErr, req)
		return nil, apiErr
	}

	// A 2xx envelope can still flag overall failure in its info block.
	if info := res.payload.Info; !info.IsSuccess() {
		apiErr := &APIError{
			StatusCode:    raw.statusCode,
			Status:        raw.status,
			Code:          info.Code,
			Message:       info.Message,
			TransactionID: info.TransactionID,
		}
		c.attachRequestBody(apiErr, req)
		return nil, apiErr
	}
	return res.payload, nil
}

// apiError builds the error for an unsuccessful (or synthesized) result,
// pulling the server's info block out of the raw body when one is present.
func (c *Client) apiError(raw *rawResult, rawBody string, req *apiRequest) *APIError {
	apiErr := &APIError{
		StatusCode:  raw.statusCode,
		Status:      raw.status,
		Message:     raw.status,
		RawResponse: rawBody,
	}
	var env Response[json.RawMessage]
	if rawBody != "" && json.Unmarshal([]byte(rawBody), &env) == nil && env.Info.Code != "" {
		apiErr.Code = env.Info.Code
		apiErr.Message = env.Info.Message
		apiErr.TransactionID = env.Info.TransactionID
	}
	c.attachRequestBody(apiErr, req)
	return apiErr
}

// attachRequestBody captures the outbound body into the error when debug
// mode was enabled at construction.
func (c *Client) attachRequestBody(apiErr *APIError, req *apiRequest) {
	if c.debug && req != nil && req.body != nil {
		apiErr.RequestBody = string(req.body)
	}
}
