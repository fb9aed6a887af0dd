// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/query"
	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/internal/tui"
	"github.com/MKhiriev/go-notes-client/models"
)

// App owns every long-lived client component.
type App struct {
	storages *store.ClientStorages
	notifier *session.Notifier
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires storages, transport, services, the query layer and the UI.
// On error everything opened so far is closed.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	app, err := newApp(cfg, storages, buildInfo, log)
	if err != nil {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "client.NewApp").Msg("failed to close storages")
		}
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.ClientConfig, storages *store.ClientStorages, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	notifier := session.NewNotifier()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Credentials, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, log)

	notes, err := query.NewNotes(services.NotesService, cfg.Cache.Size, log)
	if err != nil {
		return nil, fmt.Errorf("create notes query: %w", err)
	}

	ui, err := tui.New(tui.Deps{
		Auth:          services.AuthService,
		Notes:         notes,
		Gate:          session.NewGate(storages.Credentials, notifier, log),
		Credentials:   storages.Credentials,
		SessionEvents: notifier.Events(),
		BuildInfo:     buildInfo,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{storages: storages, notifier: notifier, ui: ui, logger: log}, nil
}

// Run blocks until the UI exits, then closes the storages.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").Msg("client started")

	runErr := a.ui.Run(ctx)

	if dropped := a.notifier.Dropped(); dropped > 0 {
		a.logger.Warn().Str("func", "App.Run").Int64("dropped", dropped).Msg("session events were dropped")
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to close storages")
	}

	if runErr != nil {
		return runErr
	}
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
