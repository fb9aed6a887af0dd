// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain, so the server's
// message remains reachable through [UserMessage].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var kind error
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		kind = ErrSessionExpired
	case errors.Is(err, adapter.ErrNotFound):
		kind = ErrNoteNotFound
	case errors.Is(err, adapter.ErrConflict):
		kind = ErrUsernameTaken
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnprocessable):
		kind = ErrInvalidNoteData
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		kind = ErrServerUnavailable
	default:
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// UserMessage returns the text to show for err: the server-provided error
// message when the response carried one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg, ok := adapter.ServerMessage(err); ok {
		return msg
	}
	return fallback
}
