// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// pageFactory builds a fresh page. notice is an optional one-line message
// to show on it.
type pageFactory func(notice string) tea.Model

// Router is what [RootModel] needs from the session layer.
type Router interface {
	Resolve(ctx context.Context, path string) string
}

// RootModel is a TUI router:
// 1) keeps the active page and its route
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages through the session gate
// 4) turns session events into a navigation to the login page
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	router Router
	pages  map[string]pageFactory

	sessionEvents <-chan session.Event
	notesChanges  <-chan struct{}
	onSignOut     func()

	route   string
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers page factories by route. onSignOut, if set, runs
// whenever the user leaves the notes page because the session ended.
func NewRootModel(
	ctx context.Context,
	router Router,
	pages map[string]pageFactory,
	sessionEvents <-chan session.Event,
	notesChanges <-chan struct{},
	onSignOut func(),
	buildInfo models.AppBuildInfo,
) RootModel {
	return RootModel{
		ctx:           ctx,
		router:        router,
		pages:         pages,
		sessionEvents: sessionEvents,
		notesChanges:  notesChanges,
		onSignOut:     onSignOut,
		buildInfo:     buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return NavigateTo{Page: session.RouteRoot} },
		waitForSessionEvent(r.sessionEvents),
		waitForNotesChange(r.notesChanges),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)

	case sessionEventMsg:
		next := waitForSessionEvent(r.sessionEvents)
		if r.route != session.RouteNotes {
			return r, next
		}
		notice := ""
		if msg.event.Reason == session.ReasonUnauthorized {
			notice = app.MsgSessionExpired
		}
		updated, cmd := r.navigate(NavigateTo{Page: session.RouteLogin, Notice: notice})
		return updated, tea.Batch(cmd, next)

	case notesChangedMsg:
		next := waitForNotesChange(r.notesChanges)
		if r.current == nil {
			return r, next
		}
		updated, cmd := r.current.Update(msg)
		r.current = updated
		return r, tea.Batch(cmd, next)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	route := r.router.Resolve(r.ctx, nav.Page)
	factory, exists := r.pages[route]
	if !exists {
		return r, nil
	}

	if r.route == session.RouteNotes && route != session.RouteNotes && r.onSignOut != nil {
		r.onSignOut()
	}

	r.showBuildInfo = false
	r.route = route
	r.current = factory(nav.Notice)
	return r, r.current.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("GO-NOTES", "", "")
	}
	return r.current.View()
}

// Route returns the route of the active page.
func (r RootModel) Route() string {
	return r.route
}

func waitForSessionEvent(events <-chan session.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return sessionEventMsg{event: e}
	}
}

func waitForNotesChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return notesChangedMsg{}
	}
}
