// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the remote
// notes service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on a single shared resty client whose
// middleware resolves the API root, attaches the stored bearer credential and
// reacts to 401 responses.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401) and
// [errors.As] with [*APIError] to read the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Register creates an account and returns the issued session token.
	// The adapter does not store the token; that is the caller's job.
	Register(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// Login exchanges credentials for a session token.
	Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// ListNotes returns the notes matching filter. Empty filter components are
	// not sent.
	ListNotes(ctx context.Context, filter models.ListFilter) ([]models.Note, error)

	// GetNote fetches a single note.
	GetNote(ctx context.Context, id int64) (models.Note, error)

	// CreateNote creates a note and returns it as stored by the server.
	CreateNote(ctx context.Context, note models.NewNote) (models.Note, error)

	// UpdateNote sends only the fields set in update.
	UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)

	ArchiveNote(ctx context.Context, id int64) (models.Note, error)
	UnarchiveNote(ctx context.Context, id int64) (models.Note, error)

	// DeleteNote removes a note permanently.
	DeleteNote(ctx context.Context, id int64) error
}
