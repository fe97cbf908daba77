// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package activityclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a response body is not the JSON
// the API promises.
var ErrMalformedResponse = errors.New("activityclient: malformed response")

// APIError is a non-2xx response from the activity service.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Detail is the server's "detail" field. Empty when the body had
	// none or it was not a string (FastAPI sends a list of validation
	// problems on 422).
	Detail string
}

func (err *APIError) Error() string {
	if err.Detail == "" {
		return fmt.Sprintf("activityclient: HTTP %d", err.StatusCode)
	}
	return fmt.Sprintf("activityclient: HTTP %d: %s", err.StatusCode, err.Detail)
}

// IsAPIError reports whether err carries an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 from the activity service.
func IsNotFound(err error) bool {
	apiError, ok := IsAPIError(err)
	return ok && apiError.StatusCode == 404
}

// parseAPIError builds an APIError from a non-2xx body. A body that is
// not JSON is reported as ErrMalformedResponse instead, since the
// caller cannot trust anything it says.
func parseAPIError(statusCode int, body []byte) error {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: HTTP %d body: %v", ErrMalformedResponse, statusCode, err)
	}

	apiError := &APIError{StatusCode: statusCode}
	if len(envelope.Detail) > 0 {
		var detail string
		if json.Unmarshal(envelope.Detail, &detail) == nil {
			apiError.Detail = detail
		}
	}
	return apiError
}
