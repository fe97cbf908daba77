// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bureau-foundation/rollcall/lib/activity"
	"github.com/bureau-foundation/rollcall/lib/netutil"
)

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root of the activity service, e.g.
	// "http://localhost:8000". Required.
	BaseURL string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// RequestTimeout bounds each request. Zero leaves the transport
	// default in place.
	RequestTimeout time.Duration

	// Logger is used for request diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Result is the body of a successful mutation.
type Result struct {
	Message string `json:"message"`
}

// Client talks to one activity service.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         *slog.Logger
}

// NewClient validates config and returns a Client.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("activityclient: BaseURL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("activityclient: parsing BaseURL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("activityclient: BaseURL must be http or https (got %q)", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		requestTimeout: config.RequestTimeout,
		logger:         logger,
	}, nil
}

// BaseURL returns the normalized service root.
func (client *Client) BaseURL() string { return client.baseURL }

// Fetch reads the full activity snapshot. The request asks every cache
// between client and server to stay out of the way: Fetch is called
// right after a mutation and must see it.
func (client *Client) Fetch(ctx context.Context) (activity.Snapshot, error) {
	header := http.Header{}
	header.Set("Cache-Control", "no-store, no-cache")
	header.Set("Pragma", "no-cache")

	status, body, err := client.do(ctx, http.MethodGet, "/activities", header)
	if err != nil {
		return activity.Snapshot{}, err
	}
	if !netutil.IsSuccess(status) {
		return activity.Snapshot{}, parseAPIError(status, body)
	}

	snapshot, err := activity.ParseSnapshot(body)
	if err != nil {
		return activity.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return snapshot, nil
}

// Signup enrolls email in the named activity.
func (client *Client) Signup(ctx context.Context, name, email string) (Result, error) {
	return client.mutate(ctx, http.MethodPost, SignupPath(name, email))
}

// Unregister removes email from the named activity.
func (client *Client) Unregister(ctx context.Context, name, email string) (Result, error) {
	return client.mutate(ctx, http.MethodDelete, UnregisterPath(name, email))
}

func (client *Client) mutate(ctx context.Context, method, target string) (Result, error) {
	status, body, err := client.do(ctx, method, target, nil)
	if err != nil {
		return Result{}, err
	}
	if !netutil.IsSuccess(status) {
		return Result{}, parseAPIError(status, body)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{}, fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, target, err)
	}
	return result, nil
}

// do sends one request and returns the status and bounded body. Only
// transport failures are errors here; status interpretation belongs to
// the caller.
func (client *Client) do(ctx context.Context, method, target string, header http.Header) (int, []byte, error) {
	if client.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.requestTimeout)
		defer cancel()
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+target, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("activityclient: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("activityclient: %s %s: %w", method, target, err)
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("activityclient: reading %s %s response: %w", method, target, err)
	}

	client.logger.Debug("activity service request",
		"method", method,
		"target", target,
		"status", response.StatusCode,
		"bytes", len(body),
	)
	return response.StatusCode, body, nil
}
