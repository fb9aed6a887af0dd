// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/query"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type notesMode int

const (
	modeBrowse notesMode = iota
	modeKeyword
	modeDate
	modeCreate
	modeEdit
	modeConfirmDelete
	modeDetail
)

const statusTTL = 2 * time.Second

var copyToClipboard = clipboard.WriteAll

// NotesModel is the notes page: a filtered list with inline create, edit,
// archive and delete. All data comes from [query.Notes]; the page redraws
// on [notesChangedMsg].
type NotesModel struct {
	ctx    context.Context
	notes  *query.Notes
	logout func(context.Context) error

	username string
	view     query.View
	idx      int
	mode     notesMode

	// filter is the last requested list key. It changes only inside Update,
	// so fetch commands finishing late never roll it back.
	filter models.ListFilter

	// pendingDelete is the note chosen when the delete prompt opened.
	pendingDelete *models.Note

	keyword textinput.Model
	date    textinput.Model
	form    noteForm
	detail  *models.Note
	spinner spinner.Model

	status string
	errMsg string
}

// NewNotesModel creates the notes page. username is shown in the header and
// may be empty. logout ends the session.
func NewNotesModel(ctx context.Context, notes *query.Notes, username string, logout func(context.Context) error) *NotesModel {
	keyword := textinput.New()
	keyword.Placeholder = "keyword"
	keyword.Prompt = "/ "
	keyword.Width = 40

	date := textinput.New()
	date.Placeholder = models.DateLayout
	date.CharLimit = len(models.DateLayout)
	date.Width = 12

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &NotesModel{
		ctx:      ctx,
		notes:    notes,
		logout:   logout,
		username: username,
		keyword:  keyword,
		date:     date,
		spinner:  s,
	}
	m.filter = notes.Filter()
	m.syncView()
	m.keyword.SetValue(m.filter.Keyword)
	m.date.SetValue(m.filter.Date)
	return m
}

// UsernameFromToken returns the subject of a JWT session token, or "" for an
// opaque token.
func UsernameFromToken(token string) string {
	claims, ok := session.DecodeClaims(token)
	if !ok {
		return ""
	}
	return claims.Subject
}

func (m *NotesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesChangedMsg, fetchDoneMsg:
		m.syncView()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case mutationDoneMsg:
		return m.onMutationDone(msg)

	case noteLoadedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err, app.MsgLoadNotesFailed)
			return m, nil
		}
		m.detail = &msg.note
		m.mode = modeDetail
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = "Logout failed: " + msg.err.Error()
			return m, nil
		}
		return m, navigate(session.RouteLogin)

	case tea.KeyMsg:
		switch m.mode {
		case modeKeyword:
			return m.updateKeyword(msg)
		case modeDate:
			return m.updateDate(msg)
		case modeCreate:
			return m.updateCreate(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, m.forwardToInput(msg)
}

// forwardToInput passes non-key messages such as cursor blinks to the
// active input widget.
func (m *NotesModel) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeKeyword:
		m.keyword, cmd = m.keyword.Update(msg)
	case modeDate:
		m.date, cmd = m.date.Update(msg)
	case modeCreate, modeEdit:
		cmd, _ = m.form.update(msg)
	}
	return cmd
}

func (m *NotesModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.view.Notes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if note, ok := m.selected(); ok {
			return m, m.cmdGet(note.ID)
		}
	case key.Matches(msg, keys.search):
		m.mode = modeKeyword
		return m, m.keyword.Focus()
	case key.Matches(msg, keys.archived):
		filter := m.filter
		filter.Archived = filter.Archived.Next()
		return m, m.applyFilter(filter)
	case key.Matches(msg, keys.date):
		m.mode = modeDate
		m.date.SetValue(m.filter.Date)
		return m, m.date.Focus()
	case key.Matches(msg, keys.newNote):
		m.errMsg = ""
		m.mode = modeCreate
		m.form = newNoteForm("", "")
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if note, ok := m.selected(); ok {
			m.errMsg = ""
			m.notes.StartEdit(note)
			m.mode = modeEdit
			m.form = newNoteForm(note.Title, note.Content)
			m.syncView()
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.archive):
		if note, ok := m.selected(); ok {
			return m, m.cmdMutation(query.MutationArchive, func(ctx context.Context) error {
				return m.notes.ToggleArchive(ctx, note)
			})
		}
	case key.Matches(msg, keys.delete):
		if note, ok := m.selected(); ok && !m.view.Busy(query.MutationDelete) {
			m.pendingDelete = &note
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if note, ok := m.selected(); ok {
			return m, cmdCopy(note.Content)
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

// updateKeyword applies the keyword filter on every keystroke.
func (m *NotesModel) updateKeyword(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter, keys.esc) {
		m.keyword.Blur()
		m.mode = modeBrowse
		return m, nil
	}

	before := m.keyword.Value()
	var cmd tea.Cmd
	m.keyword, cmd = m.keyword.Update(msg)
	if m.keyword.Value() == before {
		return m, cmd
	}

	filter := m.filter
	filter.Keyword = m.keyword.Value()
	return m, tea.Batch(cmd, m.applyFilter(filter))
}

func (m *NotesModel) updateDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.date.Blur()
		m.errMsg = ""
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, keys.enter):
		filter := m.filter
		filter.Date = strings.TrimSpace(m.date.Value())
		if err := filter.Validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.date.Blur()
		m.mode = modeBrowse
		return m, m.applyFilter(filter)
	}

	var cmd tea.Cmd
	m.date, cmd = m.date.Update(msg)
	return m, cmd
}

func (m *NotesModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, keys.submit):
		if m.view.Busy(query.MutationCreate) {
			return m, nil
		}
		m.errMsg = ""
		title, content := m.form.values()
		return m, m.cmdMutation(query.MutationCreate, func(ctx context.Context) error {
			return m.notes.Create(ctx, title, content)
		})
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *NotesModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.notes.CancelEdit()
		m.errMsg = ""
		m.mode = modeBrowse
		m.syncView()
		return m, nil
	case key.Matches(msg, keys.submit):
		if m.view.Busy(query.MutationUpdate) {
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdMutation(query.MutationUpdate, m.notes.SubmitEdit)
	}

	cmd, changed := m.form.update(msg)
	if changed {
		m.notes.SetEditFields(m.form.values())
	}
	return m, cmd
}

func (m *NotesModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeBrowse
		target := m.pendingDelete
		m.pendingDelete = nil
		if target == nil {
			return m, nil
		}
		id := target.ID
		return m, m.cmdMutation(query.MutationDelete, func(ctx context.Context) error {
			return m.notes.Delete(ctx, id)
		})
	case key.Matches(msg, keys.no):
		m.pendingDelete = nil
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *NotesModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc, keys.enter):
		m.detail = nil
		m.mode = modeBrowse
	case key.Matches(msg, keys.copy):
		if m.detail != nil {
			return m, cmdCopy(m.detail.Content)
		}
	}
	return m, nil
}

func (m *NotesModel) onMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.syncView()
	if errors.Is(msg.err, query.ErrMutationPending) {
		return m, nil
	}

	if msg.err != nil {
		m.errMsg = errorText(msg.err, mutationFallback(msg.mutation))
		return m, nil
	}

	m.errMsg = ""
	switch msg.mutation {
	case query.MutationCreate:
		m.status = "Note added"
		if m.mode == modeCreate {
			m.mode = modeBrowse
		}
	case query.MutationUpdate:
		m.status = "Note saved"
		if m.mode == modeEdit {
			m.mode = modeBrowse
		}
	case query.MutationArchive:
		m.status = "Archive state changed"
	case query.MutationDelete:
		m.status = "Note deleted"
	}
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func mutationFallback(mut query.Mutation) string {
	switch mut {
	case query.MutationCreate:
		return app.MsgAddNoteFailed
	case query.MutationUpdate:
		return app.MsgUpdateNoteFailed
	case query.MutationArchive:
		return app.MsgArchiveNoteFailed
	default:
		return app.MsgDeleteNoteFailed
	}
}

// syncView takes a fresh snapshot of the query layer and keeps the cursor
// inside the list.
func (m *NotesModel) syncView() {
	m.view = m.notes.View()
	if m.idx >= len(m.view.Notes) {
		m.idx = len(m.view.Notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	if m.mode == modeEdit && m.view.Edit == nil {
		m.mode = modeBrowse
	}
}

func (m *NotesModel) selected() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.view.Notes) {
		return models.Note{}, false
	}
	return m.view.Notes[m.idx], true
}

func (m *NotesModel) cmdRefresh() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return fetchDoneMsg{err: notes.Refresh(ctx)}
	}
}

// applyFilter makes filter active right away and defers only the fetch.
func (m *NotesModel) applyFilter(filter models.ListFilter) tea.Cmd {
	active, err := m.notes.SetActive(filter)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.filter = active
	m.syncView()

	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return fetchDoneMsg{err: notes.Load(ctx, active)}
	}
}

func (m *NotesModel) cmdGet(id int64) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		note, err := notes.Get(ctx, id)
		return noteLoadedMsg{note: note, err: err}
	}
}

func (m *NotesModel) cmdMutation(mut query.Mutation, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return mutationDoneMsg{mutation: mut, err: fn(ctx)}
	}
}

func (m *NotesModel) cmdLogout() tea.Cmd {
	ctx, logout := m.ctx, m.logout
	return func() tea.Msg {
		return logoutDoneMsg{err: logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}
