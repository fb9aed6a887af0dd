// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrInvalidAPIURL = errors.New("invalid api url")
)

// APIError is returned for every non-2xx response. It unwraps to one of the
// sentinel errors above, selected by Status.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Message is the "error" field of the response body, if any.
	Message string
	// Messages holds per-field validation details, if any.
	Messages map[string]any
	// Body is the raw response body, trimmed.
	Body string
}

func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		detail = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s (http %d): %s", kindForStatus(e.Status), e.Status, detail)
}

func (e *APIError) Unwrap() error {
	return kindForStatus(e.Status)
}

// ServerMessage returns the server-provided message carried by err, if err
// is or wraps an [*APIError] with one.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
