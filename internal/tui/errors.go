package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/service"
)

func humanizeServerUnavailableError(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable", true
	}

	return "", false
}

// errorText turns err into the line shown to the user. Client-side
// validation errors get their own wording; everything else shows the
// server message or fallback.
func errorText(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyCredentials):
		return app.MsgCredentialsRequired
	case errors.Is(err, service.ErrEmptyTitle):
		return app.MsgTitleRequired
	case errors.Is(err, service.ErrEmptyContent):
		return app.MsgContentRequired
	}

	if msg, ok := humanizeServerUnavailableError(err); ok {
		return fallback + ": " + msg
	}
	return service.UserMessage(err, fallback)
}
