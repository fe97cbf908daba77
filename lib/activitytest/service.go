// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activitytest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/bureau-foundation/rollcall/lib/activity"
	"github.com/bureau-foundation/rollcall/lib/netutil"
)

// Detail strings returned on rejected requests.
const (
	DetailNotFound      = "Activity not found"
	DetailAlreadySigned = "Student is already signed up"
	DetailFull          = "Activity is full"
	DetailNotSigned     = "Student is not signed up for this activity"
)

// Route names used by Requests.
const (
	RouteList       = "list"
	RouteSignup     = "signup"
	RouteUnregister = "unregister"
)

// Service is an in-memory activity service. Safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	entries  []activity.Entry
	requests map[string]int
	logger   *slog.Logger
	router   chi.Router
}

// NewService creates a Service holding a deep copy of seed.
func NewService(seed activity.Snapshot, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	service := &Service{
		entries:  cloneEntries(seed.Entries),
		requests: make(map[string]int),
		logger:   logger,
	}

	router := chi.NewRouter()
	router.Get("/activities", service.handleList)
	router.Post("/activities/{name}/signup", service.handleSignup)
	router.Delete("/activities/{name}/participants", service.handleUnregister)
	service.router = router
	return service
}

// ServeHTTP implements http.Handler.
func (service *Service) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	service.router.ServeHTTP(writer, request)
}

// Snapshot returns a copy of the current state.
func (service *Service) Snapshot() activity.Snapshot {
	service.mu.Lock()
	defer service.mu.Unlock()
	return activity.Snapshot{Entries: cloneEntries(service.entries)}
}

// Requests returns how many requests hit route (RouteList,
// RouteSignup, RouteUnregister).
func (service *Service) Requests(route string) int {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.requests[route]
}

func (service *Service) handleList(writer http.ResponseWriter, request *http.Request) {
	service.mu.Lock()
	service.requests[RouteList]++
	body, err := encodeOrdered(service.entries)
	service.mu.Unlock()

	if err != nil {
		service.logger.Error("encoding snapshot", "error", err)
		netutil.WriteJSON(writer, http.StatusInternalServerError, map[string]string{"detail": "encoding failed"})
		return
	}
	writer.Header().Set("Cache-Control", "no-store")
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(body)
}

func (service *Service) handleSignup(writer http.ResponseWriter, request *http.Request) {
	name, email, ok := mutationParams(writer, request)

	service.mu.Lock()
	defer service.mu.Unlock()
	service.requests[RouteSignup]++
	if !ok {
		return
	}

	index := service.indexLocked(name)
	if index < 0 {
		netutil.WriteJSON(writer, http.StatusNotFound, map[string]string{"detail": DetailNotFound})
		return
	}
	details := &service.entries[index].Details
	if slices.Contains(details.Participants, email) {
		netutil.WriteJSON(writer, http.StatusBadRequest, map[string]string{"detail": DetailAlreadySigned})
		return
	}
	if len(details.Participants) >= details.MaxParticipants {
		netutil.WriteJSON(writer, http.StatusBadRequest, map[string]string{"detail": DetailFull})
		return
	}
	details.Participants = append(details.Participants, email)

	service.logger.Debug("signed up", "activity", name, "email", email)
	netutil.WriteJSON(writer, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (service *Service) handleUnregister(writer http.ResponseWriter, request *http.Request) {
	name, email, ok := mutationParams(writer, request)

	service.mu.Lock()
	defer service.mu.Unlock()
	service.requests[RouteUnregister]++
	if !ok {
		return
	}

	index := service.indexLocked(name)
	if index < 0 {
		netutil.WriteJSON(writer, http.StatusNotFound, map[string]string{"detail": DetailNotFound})
		return
	}
	details := &service.entries[index].Details
	position := slices.Index(details.Participants, email)
	if position < 0 {
		netutil.WriteJSON(writer, http.StatusNotFound, map[string]string{"detail": DetailNotSigned})
		return
	}
	details.Participants = slices.Delete(details.Participants, position, position+1)

	service.logger.Debug("unregistered", "activity", name, "email", email)
	netutil.WriteJSON(writer, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// mutationParams extracts the activity name and email. A missing email
// is answered with a FastAPI-style 422 and ok=false.
func mutationParams(writer http.ResponseWriter, request *http.Request) (name, email string, ok bool) {
	name = chi.URLParam(request, "name")
	// chi routes on RawPath when the path has escapes that differ from
	// the default encoding (e.g. %2F); the param is still escaped then.
	if request.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}

	query := request.URL.Query()
	if !query.Has("email") {
		netutil.WriteJSON(writer, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{
				"loc":  []string{"query", "email"},
				"msg":  "Field required",
				"type": "missing",
			}},
		})
		return name, "", false
	}
	return name, query.Get("email"), true
}

func (service *Service) indexLocked(name string) int {
	for index, entry := range service.entries {
		if entry.Name == name {
			return index
		}
	}
	return -1
}

// encodeOrdered writes entries as a JSON object in slice order. The
// standard encoder sorts map keys, which would lose the seed order.
func encodeOrdered(entries []activity.Entry) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for index, entry := range entries {
		if index > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Details)
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

func cloneEntries(entries []activity.Entry) []activity.Entry {
	cloned := make([]activity.Entry, len(entries))
	for index, entry := range entries {
		cloned[index] = entry
		cloned[index].Details.Participants = append([]string{}, entry.Details.Participants...)
	}
	return cloned
}
