// Package api implements the HTTP client for the academic REST API. The
// contract is consumed, not designed here: every method issues one request
// with the caller's bearer token, decodes the JSON response, and maps
// failures onto the portal's error taxonomy. No request is ever retried; a
// failed mutation leaves deciding what to do next to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Client talks to the academic API. Construct once with NewClient and
// derive per-request copies with WithToken.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient creates a client for the given API base URL. The timeout covers
// the whole round-trip of each call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that sends the given bearer token
// on every call. The underlying HTTP client is shared.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// errorEnvelope is the error body shape the API uses on failures.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do issues one request. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return newValidationError("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return newTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Kind:    KindBusiness,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected response body: %v", err),
		}
	}
	return nil
}

// errorFromResponse builds the typed error for a non-2xx response,
// preferring the server-reported message when the body carries one.
func (c *Client) errorFromResponse(resp *http.Response) *APIError {
	message := http.StatusText(resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(raw) > 0 {
		var envelope errorEnvelope
		if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
			message = envelope.Message
		}
	}

	return &APIError{
		Kind:    classifyStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: message,
	}
}

// validateRequest runs struct-tag validation on a mutation payload before
// the round-trip, so predictable rejections never hit the network.
func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return newValidationError("%v", err)
	}
	return nil
}
