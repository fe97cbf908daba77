// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type failReader struct{}

func (*failReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestReadResponse(t *testing.T) {
	t.Run("normal body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader([]byte(`{"message":"ok"}`)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"message":"ok"}` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		if _, err := ReadResponse(&failReader{}); err == nil {
			t.Fatal("expected error from failing reader")
		}
	})
}

func TestIsSuccess(t *testing.T) {
	for status, want := range map[int]bool{199: false, 200: true, 204: true, 299: true, 300: false, 400: false, 500: false} {
		if got := IsSuccess(status); got != want {
			t.Errorf("IsSuccess(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	WriteJSON(recorder, http.StatusBadRequest, map[string]string{"detail": "nope"})

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := strings.TrimSpace(recorder.Body.String()); got != `{"detail":"nope"}` {
		t.Errorf("body = %q", got)
	}
}

func TestIsServerClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"server closed", http.ErrServerClosed, true},
		{"wrapped listener closed", fmt.Errorf("accept: %w", net.ErrClosed), true},
		{"other", errors.New("bind: address already in use"), false},
	}
	for _, test := range tests {
		if got := IsServerClosed(test.err); got != test.want {
			t.Errorf("%s: IsServerClosed = %v, want %v", test.name, got, test.want)
		}
	}
}
