// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/query"
	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errMissingDeps = errors.New("tui: missing dependencies")

// Gate is the session gate as seen by the UI.
type Gate interface {
	Router
	Logout(ctx context.Context) error
}

// Deps are the collaborators of the terminal UI.
type Deps struct {
	Auth          service.ClientAuthService
	Notes         *query.Notes
	Gate          Gate
	Credentials   store.CredentialStore
	SessionEvents <-chan session.Event
	BuildInfo     models.AppBuildInfo
}

// TUI runs the bubbletea program of the client.
type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, log *logger.Logger) (*TUI, error) {
	if deps.Auth == nil || deps.Notes == nil || deps.Gate == nil || deps.Credentials == nil {
		return nil, errMissingDeps
	}
	return &TUI{deps: deps, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.rootModel(ctx)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (t *TUI) rootModel(ctx context.Context) RootModel {
	d := t.deps
	pages := map[string]pageFactory{
		session.RouteLogin: func(notice string) tea.Model {
			return NewLoginModel(ctx, d.Auth, notice)
		},
		session.RouteRegister: func(string) tea.Model {
			return NewRegisterModel(ctx, d.Auth)
		},
		session.RouteNotes: func(string) tea.Model {
			return NewNotesModel(ctx, d.Notes, t.username(ctx), d.Gate.Logout)
		},
	}

	return NewRootModel(ctx, d.Gate, pages, d.SessionEvents, d.Notes.Subscribe(), d.Notes.Reset, d.BuildInfo)
}

func (t *TUI) username(ctx context.Context) string {
	token, ok, err := t.deps.Credentials.Get(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.username").Msg("failed to read credential")
		return ""
	}
	if !ok {
		return ""
	}
	return UsernameFromToken(token)
}
