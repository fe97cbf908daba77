// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/bureau-foundation/rollcall/lib/activitytest"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client(), Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "ftp://example.com", "://bad"} {
		if _, err := NewClient(Config{BaseURL: baseURL}); err == nil {
			t.Errorf("NewClient(%q) succeeded, want error", baseURL)
		}
	}

	client, err := NewClient(Config{BaseURL: "http://localhost:8000/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if got := client.BaseURL(); got != "http://localhost:8000" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", got)
	}
}

func TestFetchBypassesCaches(t *testing.T) {
	var gotCacheControl, gotPragma, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotPath = request.URL.Path
		gotCacheControl = request.Header.Get("Cache-Control")
		gotPragma = request.Header.Get("Pragma")
		writer.Write([]byte(`{"Zeta":{"description":"z","schedule":"s","max_participants":2,"participants":[]},` +
			`"Alpha":{"description":"a","schedule":"s","max_participants":1,"participants":["x@y.z"]}}`))
	}))

	snapshot, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotPath != "/activities" {
		t.Errorf("path = %q", gotPath)
	}
	if gotCacheControl != "no-store, no-cache" || gotPragma != "no-cache" {
		t.Errorf("cache headers = %q / %q", gotCacheControl, gotPragma)
	}
	if got := snapshot.Names(); !slices.Equal(got, []string{"Zeta", "Alpha"}) {
		t.Errorf("names = %v, want server order", got)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`["not", "an", "object"]`))
	}))

	_, err := client.Fetch(context.Background())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("Fetch error = %v, want ErrMalformedResponse", err)
	}
}

func TestFetchServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusServiceUnavailable)
		writer.Write([]byte(`{"detail":"maintenance"}`))
	}))

	_, err := client.Fetch(context.Background())
	apiError, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("Fetch error = %v, want *APIError", err)
	}
	if apiError.StatusCode != http.StatusServiceUnavailable || apiError.Detail != "maintenance" {
		t.Errorf("APIError = %+v", apiError)
	}
}

func TestMutationErrorBodies(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantDetail    string
		wantMalformed bool
	}{
		{"string detail", http.StatusBadRequest, `{"detail":"Already signed up"}`, "Already signed up", false},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"Field required"}]}`, "", false},
		{"no detail", http.StatusNotFound, `{}`, "", false},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, "", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(test.status)
				writer.Write([]byte(test.body))
			}))

			_, err := client.Signup(context.Background(), "Chess Club", "a@b.com")
			if test.wantMalformed {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Errorf("error = %v, want ErrMalformedResponse", err)
				}
				return
			}
			apiError, ok := IsAPIError(err)
			if !ok {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiError.StatusCode != test.status || apiError.Detail != test.wantDetail {
				t.Errorf("APIError = %+v, want status %d detail %q", apiError, test.status, test.wantDetail)
			}
		})
	}
}

func TestMutationSendsEncodedTarget(t *testing.T) {
	var gotMethod, gotEscapedPath, gotEmail string
	client := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotMethod = request.Method
		gotEscapedPath = request.URL.EscapedPath()
		gotEmail = request.URL.Query().Get("email")
		writer.Write([]byte(`{"message":"ok"}`))
	}))

	result, err := client.Unregister(context.Background(), "Art/Design", "a+b@c.edu")
	if err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if result.Message != "ok" {
		t.Errorf("message = %q", result.Message)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s", gotMethod)
	}
	if gotEscapedPath != "/activities/Art%2FDesign/participants" {
		t.Errorf("escaped path = %q", gotEscapedPath)
	}
	if gotEmail != "a+b@c.edu" {
		t.Errorf("email = %q", gotEmail)
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: baseURL, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Signup(context.Background(), "Chess Club", "a@b.com")
	if err == nil {
		t.Fatal("Signup against a closed server succeeded")
	}
	if _, ok := IsAPIError(err); ok {
		t.Errorf("transport failure reported as APIError: %v", err)
	}
}

func TestRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-release:
		case <-request.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := NewClient(Config{BaseURL: server.URL, RequestTimeout: 20 * time.Millisecond, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Fetch(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Fetch error = %v, want deadline exceeded", err)
	}
}

func TestAgainstInMemoryService(t *testing.T) {
	service := activitytest.NewService(activitytest.DefaultSeed(), quietLogger())
	client := newTestClient(t, service)
	ctx := context.Background()

	result, err := client.Signup(ctx, "Chess Club", "new@mergington.edu")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if result.Message != "Signed up new@mergington.edu for Chess Club" {
		t.Errorf("message = %q", result.Message)
	}

	_, err = client.Signup(ctx, "Chess Club", "new@mergington.edu")
	if apiError, ok := IsAPIError(err); !ok || apiError.Detail != activitytest.DetailAlreadySigned {
		t.Errorf("duplicate signup error = %v", err)
	}

	if _, err := client.Unregister(ctx, "Chess Club", "nobody@mergington.edu"); !IsNotFound(err) {
		t.Errorf("unregister non-member error = %v, want 404", err)
	}

	snapshot, err := client.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	details, _ := snapshot.Lookup("Chess Club")
	if !slices.Contains(details.Participants, "new@mergington.edu") {
		t.Errorf("participants = %v", details.Participants)
	}
	if got := service.Requests(activitytest.RouteList); got != 1 {
		t.Errorf("list requests = %d, want 1", got)
	}
}
