package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/query"
	"github.com/MKhiriev/go-notes-client/models"
)

const (
	listTitleWidth   = 30
	listPreviewWidth = 40
)

func (m *NotesModel) View() string {
	switch m.mode {
	case modeCreate:
		return renderPage("NEW NOTE", m.renderForm(query.MutationCreate), "tab: switch field │ ctrl+s: save │ esc: cancel")
	case modeEdit:
		return renderPage("EDIT NOTE", m.renderForm(query.MutationUpdate), "tab: switch field │ ctrl+s: save │ esc: cancel")
	case modeDetail:
		return renderPage("NOTE", m.renderDetail(), "c: copy │ esc: back")
	}

	return renderPage("NOTES", m.renderList(), m.hotKeys())
}

func (m *NotesModel) hotKeys() string {
	switch m.mode {
	case modeKeyword:
		return "type to filter │ enter/esc: done"
	case modeDate:
		return "enter: apply (empty clears) │ esc: cancel"
	case modeConfirmDelete:
		return "y: delete │ n/esc: cancel"
	default:
		return "↑/↓: move │ enter: open │ /: search │ a: archived │ t: date │ n: new │ e: edit │ x: archive │ d: delete │ c: copy │ r: refresh │ l: logout"
	}
}

func (m *NotesModel) renderHeader() string {
	f := m.filter
	var b strings.Builder
	b.WriteString("User: ")
	b.WriteString(valueOrDash(m.username))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Filter: keyword=%s │ show=%s │ date=%s",
		valueOrDash(f.Keyword), f.Archived.Label(), valueOrDash(f.Date))
	return b.String()
}

func (m *NotesModel) renderList() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.mode {
	case modeKeyword:
		b.WriteString(m.keyword.View())
		b.WriteString("\n")
	case modeDate:
		b.WriteString("Date: ")
		b.WriteString(m.date.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.view.Loading():
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading notes...\n")
	case m.view.Status == query.StatusError && m.view.Notes == nil:
		b.WriteString(errorStyle.Render(errorText(m.view.Err, app.MsgLoadNotesFailed)))
		b.WriteString("\n")
	case len(m.view.Notes) == 0:
		b.WriteString("No notes\n")
	default:
		for i, note := range m.view.Notes {
			b.WriteString(m.renderRow(i, note))
			b.WriteString("\n")
		}
	}

	if m.view.Notes != nil {
		switch m.view.Status {
		case query.StatusPending:
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(m.spinner.View() + " refreshing"))
			b.WriteString("\n")
		case query.StatusError:
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(errorText(m.view.Err, app.MsgLoadNotesFailed)))
			b.WriteString("\n")
		}
	}

	if m.mode == modeConfirmDelete && m.pendingDelete != nil {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete %q?", fitText(m.pendingDelete.Title, listTitleWidth))))
		b.WriteString("\n")
	}

	m.renderStatus(&b)
	return strings.TrimRight(b.String(), "\n")
}

func (m *NotesModel) renderRow(i int, note models.Note) string {
	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}

	flag := "   "
	if note.Archived {
		flag = "[A]"
	}
	busy := ""
	if i == m.idx && (m.view.Busy(query.MutationArchive) || m.view.Busy(query.MutationDelete)) {
		busy = " ..."
	}

	row := fmt.Sprintf("%s%s %-*s │ %s%s",
		cursor, flag, listTitleWidth, fitText(note.Title, listTitleWidth),
		fitText(firstLine(note.Content), listPreviewWidth), busy)

	switch {
	case i == m.idx:
		return selectedStyle.Render(row)
	case note.Archived:
		return archivedStyle.Render(row)
	default:
		return row
	}
}

func (m *NotesModel) renderForm(mut query.Mutation) string {
	var b strings.Builder
	b.WriteString(m.form.render())
	b.WriteString("\n")
	if m.view.Busy(mut) {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString("saving...")
		b.WriteString("\n")
	}
	m.renderStatus(&b)
	return strings.TrimRight(b.String(), "\n")
}

func (m *NotesModel) renderDetail() string {
	if m.detail == nil {
		return ""
	}
	n := m.detail

	var b strings.Builder
	fmt.Fprintf(&b, "ID       │ %d\n", n.ID)
	fmt.Fprintf(&b, "Title    │ %s\n", n.Title)
	fmt.Fprintf(&b, "Archived │ %t\n", n.Archived)
	if n.CreatedAt != nil {
		fmt.Fprintf(&b, "Created  │ %s\n", n.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if n.UpdatedAt != nil {
		fmt.Fprintf(&b, "Updated  │ %s\n", n.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	b.WriteString("\n")
	b.WriteString(n.Content)
	b.WriteString("\n")
	m.renderStatus(&b)
	return strings.TrimRight(b.String(), "\n")
}

func (m *NotesModel) renderStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
}
