package tui

import (
	"github.com/MKhiriev/go-notes-client/internal/query"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/models"
)

// NavigateTo asks [RootModel] to open Page. The target is passed through the
// session gate first, so an unauthenticated request for the notes page ends
// on the login page. Navigation replaces the current page: there is no back
// history.
type NavigateTo struct {
	Page string
	// Notice is shown on the target page, if it supports one.
	Notice string
}

// authResultMsg is produced by the login and register commands.
type authResultMsg struct {
	err error
}

// sessionEventMsg wraps an event read from the session notifier.
type sessionEventMsg struct {
	event session.Event
}

// notesChangedMsg is produced whenever the query layer signals a change.
type notesChangedMsg struct{}

// fetchDoneMsg is produced when a list fetch settles.
type fetchDoneMsg struct {
	err error
}

// mutationDoneMsg is produced when a mutation settles.
type mutationDoneMsg struct {
	mutation query.Mutation
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type logoutDoneMsg struct {
	err error
}

// noteLoadedMsg is produced by the detail view fetch.
type noteLoadedMsg struct {
	note models.Note
	err  error
}
