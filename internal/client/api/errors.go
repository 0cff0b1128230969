package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrUnavailable marks transport-level failures, where the request never
// produced a backend response.
var ErrUnavailable = errors.New("server unavailable")

// fallbackDetail replaces the backend detail message when the error body
// is empty or not JSON. The product surface is Spanish.
const fallbackDetail = "Error desconocido"

// APIError is a backend-reported failure: the backend answered with a
// non-success status. Detail is the human-readable message extracted from
// the response body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

func newAPIError(resp *http.Response) *APIError {
	detail := fallbackDetail

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		detail = body.Detail
	}

	return &APIError{Status: resp.StatusCode, Detail: detail}
}
