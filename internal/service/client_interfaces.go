// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration and
// authentication. On success the issued session token is persisted in the
// credential store, so the next request through the adapter carries it.
type ClientAuthService interface {
	// Register creates a new account on the server. Username and password are
	// trimmed; if either is empty [ErrEmptyCredentials] is returned and no
	// request is sent.
	Register(ctx context.Context, username, password string) error

	// Login authenticates an existing account. Same input rules as Register.
	Login(ctx context.Context, username, password string) error
}

// ClientNotesService defines the client-side contract for reading and
// mutating notes on the server. It holds no state; caching and invalidation
// belong to the query layer.
type ClientNotesService interface {
	// List returns the notes matching filter.
	List(ctx context.Context, filter models.ListFilter) ([]models.Note, error)

	// Get returns a single note.
	Get(ctx context.Context, id int64) (models.Note, error)

	// Create validates and creates a note. A title or content that is empty
	// after trimming is rejected with [ErrEmptyTitle] or [ErrEmptyContent].
	// The values are sent as entered.
	Create(ctx context.Context, title, content string) (models.Note, error)

	// Update sends only the non-empty fields. If both are empty it returns
	// [ErrNothingToUpdate] without a request.
	Update(ctx context.Context, id int64, title, content string) (models.Note, error)

	Archive(ctx context.Context, id int64) (models.Note, error)
	Unarchive(ctx context.Context, id int64) (models.Note, error)

	// Delete removes the note permanently.
	Delete(ctx context.Context, id int64) error
}
