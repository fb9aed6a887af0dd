// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/store"
)

// Routes known to the client.
const (
	RouteRoot     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteNotes    = "/notes"
)

// Gate decides which views are reachable for the current session.
type Gate struct {
	credentials store.CredentialStore
	publisher   Publisher
	logger      *logger.Logger
}

// NewGate creates a [Gate] on top of the credential store. publisher may be
// nil, in which case Logout publishes nothing.
func NewGate(credentials store.CredentialStore, publisher Publisher, log *logger.Logger) *Gate {
	return &Gate{credentials: credentials, publisher: publisher, logger: log}
}

// IsAuthenticated reports whether a credential is stored right now. It is
// evaluated on every call and never cached. A store error counts as "not
// authenticated".
func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := g.credentials.Get(ctx)
	if err != nil {
		g.logger.Err(err).Str("func", "Gate.IsAuthenticated").Msg("failed to read credential")
		return false
	}
	return ok
}

// Resolve maps a requested route to the route that must actually be shown:
//   - "/" goes to notes or login depending on the session;
//   - "/notes" requires a session, otherwise login;
//   - "/login" and "/register" redirect an authenticated user to notes;
//   - anything else is treated as "/".
func (g *Gate) Resolve(ctx context.Context, path string) string {
	authed := g.IsAuthenticated(ctx)

	switch path {
	case RouteRoot, RouteNotes:
		if authed {
			return RouteNotes
		}
		return RouteLogin
	case RouteLogin, RouteRegister:
		if authed {
			return RouteNotes
		}
		return path
	default:
		return g.Resolve(ctx, RouteRoot)
	}
}

// Logout drops the stored credential and publishes a [ReasonLogout] event.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.credentials.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	if g.publisher != nil {
		g.publisher.Publish(Event{Reason: ReasonLogout})
	}
	return nil
}
