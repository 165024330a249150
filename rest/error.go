// Package rest implements the AutoDoc API services over HTTP.
package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the backend. The payload's "detail"
// field is preferred, falling back to "message".
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (HTTP %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error (HTTP %d)", e.StatusCode)
}

// maxErrorBody bounds how much of an error response is read for the detail
// message.
const maxErrorBody = 64 << 10

// errorFromResponse builds an APIError from a non-2xx response. The body is
// consumed but not closed.
func errorFromResponse(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	apiErr.Detail = payload.Detail
	if apiErr.Detail == "" {
		apiErr.Detail = payload.Message
	}
	return apiErr
}
