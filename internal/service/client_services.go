// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client business operations: authentication
// against the notes service and the stateless note operations used by the
// query layer.
package service

import (
	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	NotesService ClientNotesService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(storages.Credentials, serverAdapter, log),
		NotesService: NewClientNotesService(serverAdapter, log),
	}
}
