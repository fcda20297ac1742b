// Copyright 2026 The hipchat-api Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dobarkod/hipchat-api/lib/netutil"
	"github.com/dobarkod/hipchat-api/lib/secret"
)

// DefaultBaseURL is the production v1 API endpoint.
const DefaultBaseURL = "https://api.hipchat.com/v1"

// defaultFromName is the sender name used for topic changes and room
// messages when the caller does not set one.
const defaultFromName = "API"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// AuthToken is the HipChat API token. Required. The Client takes
	// ownership: Client.Close releases the buffer.
	AuthToken *secret.Buffer
	// BaseURL is the API base URL. If empty, DefaultBaseURL is used.
	BaseURL string
	// FromName is the sender name attached to topic changes and room
	// messages when the request does not set its own. If empty, "API"
	// is used.
	FromName string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client is an authenticated HipChat v1 API client.
//
// The Rooms and Users facades are the API surface; the Client itself
// only carries the token, transport, and defaults they share. A Client
// is read-only after construction.
type Client struct {
	baseURL    string
	fromName   string
	httpClient *http.Client
	logger     *slog.Logger
	authToken  *secret.Buffer

	// Rooms wraps the rooms/* endpoints.
	Rooms *RoomService
	// Users wraps the users/* endpoints.
	Users *UserService
}

// NewClient creates a new authenticated HipChat client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.AuthToken == nil {
		return nil, fmt.Errorf("hipchat: AuthToken is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// Validate the URL structure. We store the string form (with the
	// trailing slash stripped) and build request URLs by concatenation.
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("hipchat: invalid BaseURL %q: %w", baseURL, err)
	}

	fromName := config.FromName
	if fromName == "" {
		fromName = defaultFromName
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		fromName:   fromName,
		httpClient: httpClient,
		logger:     logger,
		authToken:  config.AuthToken,
	}
	client.Rooms = &RoomService{client: client}
	client.Users = &UserService{client: client}
	return client, nil
}

// FromName returns the default sender name for topic changes and messages.
func (c *Client) FromName() string {
	return c.fromName
}

// CloseIdleConnections closes idle HTTP connections in the underlying
// transport's connection pool. Call this after a network disruption to
// force subsequent requests to establish fresh TCP connections instead
// of reusing a poisoned pooled connection.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Close releases the auth token memory (zeros, unlocks, unmaps).
// The Client must not be used after Close. Idempotent.
func (c *Client) Close() error {
	return c.authToken.Close()
}

// get issues an authenticated GET to a v1 API method (e.g. "rooms/show")
// and returns the response body. params may be nil.
func (c *Client) get(ctx context.Context, method string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	request, err := c.newRequest(ctx, http.MethodGet, method, query, nil)
	if err != nil {
		return nil, err
	}
	return c.do(request, method)
}

// post issues an authenticated POST to a v1 API method with a
// form-encoded body and returns the response body. The auth token and
// format travel in the query string, matching the documented scheme.
func (c *Client) post(ctx context.Context, method string, form url.Values) ([]byte, error) {
	request, err := c.newRequest(ctx, http.MethodPost, method, url.Values{}, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(request, method)
}

// newRequest builds an authenticated request. The token is attached as
// the auth_token query parameter on every call; the token string is a
// short-lived heap copy made at this boundary.
func (c *Client) newRequest(ctx context.Context, httpMethod, method string, query url.Values, body *strings.Reader) (*http.Request, error) {
	query.Set("format", "json")
	query.Set("auth_token", c.authToken.String())
	requestURL := c.baseURL + "/" + method + "?" + query.Encode()

	var request *http.Request
	var err error
	if body != nil {
		request, err = http.NewRequestWithContext(ctx, httpMethod, requestURL, body)
	} else {
		request, err = http.NewRequestWithContext(ctx, httpMethod, requestURL, nil)
	}
	if err != nil {
		return nil, &TransportError{Op: httpMethod + " " + method, Err: err}
	}
	return request, nil
}

// do executes the request and unwraps the response. On 2xx, returns the
// body. On any other status, returns a *RemoteError decoded from the
// standard error envelope; a non-JSON error body fails loud with the
// raw content.
func (c *Client) do(request *http.Request, method string) ([]byte, error) {
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &TransportError{Op: request.Method + " " + method, Err: err}
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, &TransportError{Op: "reading " + method + " response", Err: err}
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return body, nil
	}

	var envelope struct {
		Error *RemoteError `json:"error"`
	}
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr != nil || envelope.Error == nil {
		return nil, fmt.Errorf("hipchat: unexpected %d response from %s: %s",
			response.StatusCode, method, string(body))
	}
	remoteErr := envelope.Error
	remoteErr.StatusCode = response.StatusCode
	return nil, remoteErr
}
