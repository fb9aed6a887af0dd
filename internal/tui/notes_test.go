package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/mock"
	"github.com/MKhiriev/go-notes-client/internal/query"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var allFilter = models.ListFilter{Archived: models.ArchivedAll}

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: 1, Title: "First", Content: "one\nmore"},
		{ID: 2, Title: "Second", Content: "two", Archived: true},
	}
}

type notesFixture struct {
	svc     *mock.MockClientNotesService
	notes   *query.Notes
	logouts int
}

// newLoadedNotesModel returns a notes page that already shows sampleNotes.
func newLoadedNotesModel(t *testing.T) (*notesFixture, *NotesModel) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &notesFixture{svc: mock.NewMockClientNotesService(ctrl)}

	notes, err := query.NewNotes(f.svc, 8, logger.Nop())
	require.NoError(t, err)
	f.notes = notes

	m := NewNotesModel(context.Background(), notes, "alice", func(context.Context) error {
		f.logouts++
		return nil
	})

	f.svc.EXPECT().List(gomock.Any(), allFilter).Return(sampleNotes(), nil)
	m.Update(m.cmdRefresh()())
	return f, m
}

func press(t *testing.T, m *NotesModel, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// feed runs cmd and hands every resulting message back to m.
func feed(m *NotesModel, cmd tea.Cmd) {
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case fetchDoneMsg, mutationDoneMsg, copiedMsg, logoutDoneMsg, noteLoadedMsg:
			m.Update(msg)
		}
	}
}

func TestNotesModel_RendersList(t *testing.T) {
	_, m := newLoadedNotesModel(t)

	view := m.View()
	assert.Contains(t, view, "User: alice")
	assert.Contains(t, view, "First")
	assert.Contains(t, view, "one")
	assert.NotContains(t, view, "more")
	assert.Contains(t, view, "[A]")
	assert.Contains(t, view, "show=All")
}

func TestNotesModel_LoadErrorShown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientNotesService(ctrl)
	notes, err := query.NewNotes(svc, 8, logger.Nop())
	require.NoError(t, err)
	m := NewNotesModel(context.Background(), notes, "", nil)

	assert.Contains(t, m.View(), "Loading notes")

	svc.EXPECT().List(gomock.Any(), allFilter).Return(nil, errors.New("dial tcp: connection refused"))
	m.Update(m.cmdRefresh()())

	assert.Contains(t, m.View(), "Failed to load notes")
}

func TestNotesModel_KeywordFiltersOnEveryKeystroke(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("/"))
	assert.Equal(t, modeKeyword, m.mode)

	f.svc.EXPECT().List(gomock.Any(), models.ListFilter{Keyword: "s", Archived: models.ArchivedAll}).
		Return(sampleNotes()[1:], nil)
	feed(m, press(t, m, keyRunes("s")))

	assert.Equal(t, "s", f.notes.Filter().Keyword)
	assert.Len(t, m.view.Notes, 1)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeBrowse, m.mode)
}

func TestNotesModel_KeywordFetchesFinishingOutOfOrder(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("/"))
	first := press(t, m, keyRunes("a"))
	second := press(t, m, keyRunes("b"))
	assert.Equal(t, "ab", f.notes.Filter().Keyword)

	f.svc.EXPECT().List(gomock.Any(), models.ListFilter{Keyword: "ab", Archived: models.ArchivedAll}).
		Return(sampleNotes()[1:], nil)
	f.svc.EXPECT().List(gomock.Any(), models.ListFilter{Keyword: "a", Archived: models.ArchivedAll}).
		Return(sampleNotes(), nil)
	feed(m, second)
	feed(m, first)

	assert.Equal(t, "ab", m.keyword.Value())
	assert.Equal(t, "ab", f.notes.Filter().Keyword)
	require.Len(t, m.view.Notes, 1)
	assert.Equal(t, int64(2), m.view.Notes[0].ID)
}

func TestNotesModel_ArchivedToggleKeepsTypedKeyword(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("/"))
	typed := press(t, m, keyRunes("z"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	toggled := press(t, m, keyRunes("a"))

	f.svc.EXPECT().List(gomock.Any(), models.ListFilter{Keyword: "z", Archived: models.ArchivedAll}).
		Return(nil, nil)
	f.svc.EXPECT().List(gomock.Any(), models.ListFilter{Keyword: "z", Archived: models.ArchivedActive}).
		Return(sampleNotes()[:1], nil)
	feed(m, typed)
	feed(m, toggled)

	assert.Equal(t, models.ListFilter{Keyword: "z", Archived: models.ArchivedActive}, f.notes.Filter())
	assert.Contains(t, m.View(), "keyword=z")
	assert.Contains(t, m.View(), "show=Active")
}

func TestNotesModel_ArchivedToggleCycles(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	f.svc.EXPECT().List(gomock.Any(), models.ListFilter{Archived: models.ArchivedActive}).
		Return(sampleNotes()[:1], nil)
	feed(m, press(t, m, keyRunes("a")))

	assert.Equal(t, models.ArchivedActive, f.notes.Filter().Archived)
	assert.Contains(t, m.View(), "show=Active")
}

func TestNotesModel_InvalidDateRejectedWithoutRequest(t *testing.T) {
	_, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("t"))
	require.Equal(t, modeDate, m.mode)
	press(t, m, keyRunes("2024-1-1"))

	assert.Nil(t, press(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, modeDate, m.mode)
	assert.Contains(t, m.View(), "invalid date filter")
}

func TestNotesModel_DateAppliedOnEnter(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("t"))
	press(t, m, keyRunes("2024-05-01"))

	f.svc.EXPECT().List(gomock.Any(), models.ListFilter{Archived: models.ArchivedAll, Date: "2024-05-01"}).
		Return([]models.Note{}, nil)
	feed(m, press(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Contains(t, m.View(), "No notes")
}

func TestNotesModel_CreateSuccess(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("n"))
	require.Equal(t, modeCreate, m.mode)
	press(t, m, keyRunes("Groceries"))
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, keyRunes("milk"))

	f.svc.EXPECT().Create(gomock.Any(), "Groceries", "milk").Return(models.Note{ID: 3}, nil)
	f.svc.EXPECT().List(gomock.Any(), allFilter).Return(sampleNotes(), nil)
	feed(m, press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS}))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Contains(t, m.View(), "Note added")
}

func TestNotesModel_CreateFailureKeepsInput(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("n"))
	press(t, m, keyRunes("Groceries"))
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, keyRunes("milk"))

	f.svc.EXPECT().Create(gomock.Any(), "Groceries", "milk").
		Return(models.Note{}, &adapter.APIError{Status: 400, Message: "Title must be at most 100 characters"})
	feed(m, press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS}))

	assert.Equal(t, modeCreate, m.mode)
	view := m.View()
	assert.Contains(t, view, "Title must be at most 100 characters")
	title, content := m.form.values()
	assert.Equal(t, "Groceries", title)
	assert.Equal(t, "milk", content)
}

func TestNotesModel_InlineEdit(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("e"))
	require.Equal(t, modeEdit, m.mode)
	press(t, m, keyRunes("!"))

	edit, ok := f.notes.Editing()
	require.True(t, ok)
	assert.Equal(t, int64(1), edit.NoteID)
	assert.Equal(t, "First!", edit.Title)

	f.svc.EXPECT().Update(gomock.Any(), int64(1), "First!", "one\nmore").Return(models.Note{ID: 1}, nil)
	f.svc.EXPECT().List(gomock.Any(), allFilter).Return(sampleNotes(), nil)
	feed(m, press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS}))

	assert.Equal(t, modeBrowse, m.mode)
	_, ok = f.notes.Editing()
	assert.False(t, ok)
}

func TestNotesModel_EditCancel(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("e"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeBrowse, m.mode)
	_, ok := f.notes.Editing()
	assert.False(t, ok)
}

func TestNotesModel_ArchiveToggle(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	f.svc.EXPECT().Unarchive(gomock.Any(), int64(2)).Return(models.Note{ID: 2}, nil)
	f.svc.EXPECT().List(gomock.Any(), allFilter).Return(sampleNotes(), nil)
	feed(m, press(t, m, keyRunes("x")))

	assert.Contains(t, m.View(), "Archive state changed")
}

func TestNotesModel_DeleteNeedsConfirmation(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	assert.Nil(t, press(t, m, keyRunes("d")))
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), `Delete "First"?`)

	assert.Nil(t, press(t, m, keyRunes("n")))
	assert.Equal(t, modeBrowse, m.mode)

	press(t, m, keyRunes("d"))
	f.svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	f.svc.EXPECT().List(gomock.Any(), allFilter).Return(sampleNotes()[1:], nil)
	feed(m, press(t, m, keyRunes("y")))

	assert.Contains(t, m.View(), "Note deleted")
	assert.Len(t, m.view.Notes, 1)
}

func TestNotesModel_DeleteTargetsNoteChosenAtPrompt(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("d"))
	require.Equal(t, modeConfirmDelete, m.mode)

	// a refetch lands while the prompt is open and puts another note first
	reordered := append([]models.Note{{ID: 3, Title: "Newcomer", Content: "x"}}, sampleNotes()...)
	f.svc.EXPECT().List(gomock.Any(), allFilter).Return(reordered, nil)
	m.Update(m.cmdRefresh()())

	assert.Contains(t, m.View(), `Delete "First"?`)

	f.svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	f.svc.EXPECT().List(gomock.Any(), allFilter).Return(reordered[:1], nil)
	feed(m, press(t, m, keyRunes("y")))

	assert.Contains(t, m.View(), "Note deleted")
	assert.Nil(t, m.pendingDelete)
}

func TestNotesModel_DeleteFailure(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	press(t, m, keyRunes("d"))
	f.svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(&adapter.APIError{Status: 404, Message: "Note not found"})
	feed(m, press(t, m, keyRunes("y")))

	assert.Contains(t, m.View(), "Note not found")
}

func TestNotesModel_OpenDetail(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	f.svc.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Note{ID: 1, Title: "First", Content: "one\nmore"}, nil)
	feed(m, press(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	require.Equal(t, modeDetail, m.mode)
	assert.Contains(t, m.View(), "more")

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
}

func TestNotesModel_Copy(t *testing.T) {
	_, m := newLoadedNotesModel(t)

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	feed(m, press(t, m, keyRunes("c")))

	assert.Equal(t, "one\nmore", copied)
	assert.Contains(t, m.View(), "Copied to clipboard")
}

func TestNotesModel_Logout(t *testing.T) {
	f, m := newLoadedNotesModel(t)

	cmd := press(t, m, keyRunes("l"))
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())

	assert.Equal(t, 1, f.logouts)
	require.NotNil(t, next)
	assert.Equal(t, NavigateTo{Page: session.RouteLogin}, next())
}

func TestUsernameFromToken(t *testing.T) {
	assert.Empty(t, UsernameFromToken("opaque"))
}
