// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the client-side persistence layer: a named slot in a
// local SQLite database that keeps the session credential between runs.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore holds at most one session token. Consumers must read the
// token through Get every time they need it and never keep a copy across a
// blocking call: a concurrent 401 may clear it at any moment.
type CredentialStore interface {
	// Set replaces the stored token. An empty token is rejected with
	// [ErrEmptyToken].
	Set(ctx context.Context, token string) error

	// Get returns the stored token. ok is false when the slot is empty.
	Get(ctx context.Context) (token string, ok bool, err error)

	// Clear removes the stored token. Clearing an empty slot is a no-op.
	Clear(ctx context.Context) error
}
