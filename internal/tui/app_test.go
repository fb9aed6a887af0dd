package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRouter struct {
	authed bool
}

func (f *fakeRouter) Resolve(_ context.Context, path string) string {
	switch path {
	case session.RouteLogin, session.RouteRegister:
		if f.authed {
			return session.RouteNotes
		}
		return path
	default:
		if f.authed {
			return session.RouteNotes
		}
		return session.RouteLogin
	}
}

type stubPage struct {
	name   string
	notice string
	got    []tea.Msg
}

func (p *stubPage) Init() tea.Cmd { return nil }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name + ":" + p.notice }

type rootFixture struct {
	router    *fakeRouter
	events    chan session.Event
	changes   chan struct{}
	signOuts  int
	built     map[string]int
	lastPages map[string]*stubPage
}

func newRootFixture(authed bool) (*rootFixture, RootModel) {
	f := &rootFixture{
		router:    &fakeRouter{authed: authed},
		events:    make(chan session.Event, 1),
		changes:   make(chan struct{}, 1),
		built:     map[string]int{},
		lastPages: map[string]*stubPage{},
	}

	factory := func(route string) pageFactory {
		return func(notice string) tea.Model {
			f.built[route]++
			p := &stubPage{name: route, notice: notice}
			f.lastPages[route] = p
			return p
		}
	}
	pages := map[string]pageFactory{
		session.RouteLogin:    factory(session.RouteLogin),
		session.RouteRegister: factory(session.RouteRegister),
		session.RouteNotes:    factory(session.RouteNotes),
	}

	root := NewRootModel(context.Background(), f.router, pages, f.events, f.changes,
		func() { f.signOuts++ }, models.AppBuildInfo{})
	return f, root
}

func update(t *testing.T, m tea.Model, msg tea.Msg) RootModel {
	t.Helper()
	next, _ := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func TestRootModel_NavigateResolvesThroughGate(t *testing.T) {
	tests := []struct {
		name   string
		authed bool
		page   string
		want   string
	}{
		{name: "root unauthenticated", authed: false, page: session.RouteRoot, want: session.RouteLogin},
		{name: "root authenticated", authed: true, page: session.RouteRoot, want: session.RouteNotes},
		{name: "notes unauthenticated", authed: false, page: session.RouteNotes, want: session.RouteLogin},
		{name: "register unauthenticated", authed: false, page: session.RouteRegister, want: session.RouteRegister},
		{name: "login authenticated", authed: true, page: session.RouteLogin, want: session.RouteNotes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, root := newRootFixture(tt.authed)
			root = update(t, root, NavigateTo{Page: tt.page})
			assert.Equal(t, tt.want, root.Route())
		})
	}
}

func TestRootModel_NavigateBuildsFreshPage(t *testing.T) {
	f, root := newRootFixture(false)

	root = update(t, root, NavigateTo{Page: session.RouteLogin})
	root = update(t, root, NavigateTo{Page: session.RouteLogin, Notice: "hello"})

	assert.Equal(t, 2, f.built[session.RouteLogin])
	assert.Equal(t, "hello", f.lastPages[session.RouteLogin].notice)
	assert.Equal(t, session.RouteLogin+":hello", root.View())
}

func TestRootModel_UnauthorizedEventOnNotesGoesToLogin(t *testing.T) {
	f, root := newRootFixture(true)
	root = update(t, root, NavigateTo{Page: session.RouteRoot})
	require.Equal(t, session.RouteNotes, root.Route())

	f.router.authed = false
	root = update(t, root, sessionEventMsg{event: session.Event{Reason: session.ReasonUnauthorized}})

	assert.Equal(t, session.RouteLogin, root.Route())
	assert.Equal(t, app.MsgSessionExpired, f.lastPages[session.RouteLogin].notice)
	assert.Equal(t, 1, f.signOuts)
}

func TestRootModel_LogoutEventHasNoNotice(t *testing.T) {
	f, root := newRootFixture(true)
	root = update(t, root, NavigateTo{Page: session.RouteNotes})

	f.router.authed = false
	root = update(t, root, sessionEventMsg{event: session.Event{Reason: session.ReasonLogout}})

	assert.Equal(t, session.RouteLogin, root.Route())
	assert.Empty(t, f.lastPages[session.RouteLogin].notice)
}

func TestRootModel_SessionEventOutsideNotesIgnored(t *testing.T) {
	f, root := newRootFixture(false)
	root = update(t, root, NavigateTo{Page: session.RouteLogin})
	page := f.lastPages[session.RouteLogin]

	root = update(t, root, sessionEventMsg{event: session.Event{Reason: session.ReasonUnauthorized}})

	assert.Equal(t, session.RouteLogin, root.Route())
	assert.Same(t, page, f.lastPages[session.RouteLogin])
	assert.Equal(t, 1, f.built[session.RouteLogin])
	assert.Zero(t, f.signOuts)
}

func TestRootModel_SessionEventRearmsListener(t *testing.T) {
	f, root := newRootFixture(false)
	root = update(t, root, NavigateTo{Page: session.RouteLogin})

	_, cmd := root.Update(sessionEventMsg{event: session.Event{Reason: session.ReasonLogout}})
	require.NotNil(t, cmd)

	f.events <- session.Event{Reason: session.ReasonUnauthorized}
	assert.Equal(t, sessionEventMsg{event: session.Event{Reason: session.ReasonUnauthorized}}, cmd())
}

func TestRootModel_NotesChangedDelegatedAndRearmed(t *testing.T) {
	f, root := newRootFixture(true)
	root = update(t, root, NavigateTo{Page: session.RouteNotes})

	_, cmd := root.Update(notesChangedMsg{})
	require.NotNil(t, cmd)

	assert.Contains(t, f.lastPages[session.RouteNotes].got, tea.Msg(notesChangedMsg{}))

	f.changes <- struct{}{}
	assert.Contains(t, runCmd(cmd), tea.Msg(notesChangedMsg{}))
}

func TestRootModel_QuitAndBuildInfo(t *testing.T) {
	_, root := newRootFixture(false)
	root = update(t, root, NavigateTo{Page: session.RouteLogin})

	_, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	root = update(t, root, tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, root.View(), "ABOUT")

	root = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, root.View(), "ABOUT")
}
