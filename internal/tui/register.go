package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-client/internal/app"
	"github.com/MKhiriev/go-notes-client/internal/session"
	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the registration page. A successful registration stores
// the issued token, so the user lands on the notes page right away.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       credentialsForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{ctx: ctx, auth: auth, form: newCredentialsForm()}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err, app.MsgRegistrationFailed)
			return m, nil
		}
		return m, navigate(session.RouteNotes)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.switchTo):
			return m, navigate(session.RouteLogin)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			username, password := m.form.values()
			return m, authCmd(m.ctx, m.auth.Register, username, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	return renderPage(
		"REGISTER",
		m.form.render("Create account", m.submitting, "", m.errMsg),
		"tab: next field │ enter: register │ ctrl+r: log in",
	)
}
