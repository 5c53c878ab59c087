// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// It is suitable for interacting with any JSON-RPC-compatible service, such as
// blockchain nodes polled over plain HTTP.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates the HTTP layer answered with a non-2xx status code.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrEmptyResult indicates the provider answered with a null result (e.g. unknown block).
	ErrEmptyResult = errors.New("empty result")
)

// StatusError carries the HTTP status code of a failed JSON-RPC round trip.
// It wraps ErrUnexpectedStatus.
type StatusError struct {
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.StatusCode)
}

func (e StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ProviderError is the JSON-RPC error object returned by the provider.
// It wraps ErrProviderReturnedError.
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e ProviderError) Unwrap() error {
	return ErrProviderReturnedError
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *ProviderError  `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the provider error, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return *r.Error
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string
	httpClient       *http.Client
}

var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, StatusError{StatusCode: res.StatusCode}
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Result, data.Err()
}

// FetchInto calls Fetch and decodes a non-null result into a value of type T.
// A null result is reported as ErrEmptyResult.
func FetchInto[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var out T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return out, err
	}

	if len(raw) == 0 || string(raw) == "null" {
		return out, fmt.Errorf("%w: %s", ErrEmptyResult, method)
	}

	return out, json.Unmarshal(raw, &out)
}

// NewClient constructs and returns a Client that will send JSON-RPC requests
// to the specified provider endpoint using the given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
