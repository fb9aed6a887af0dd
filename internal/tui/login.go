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

// LoginModel is the login page. Enter submits the form through
// [service.ClientAuthService.Login]; on success the root is asked to open
// the notes page.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       credentialsForm
	submitting bool
	notice     string
	errMsg     string
}

// NewLoginModel creates the login page. notice is shown under the form,
// for example after the session expired.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, notice string) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		form:   newCredentialsForm(),
		notice: notice,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err, app.MsgLoginFailed)
			return m, nil
		}
		return m, navigate(session.RouteNotes)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.switchTo):
			return m, navigate(session.RouteRegister)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			username, password := m.form.values()
			return m, authCmd(m.ctx, m.auth.Login, username, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	return renderPage(
		"LOGIN",
		m.form.render("Log in", m.submitting, m.notice, m.errMsg),
		"tab: next field │ enter: log in │ ctrl+r: register",
	)
}

func authCmd(ctx context.Context, fn func(context.Context, string, string) error, username, password string) tea.Cmd {
	return func() tea.Msg {
		return authResultMsg{err: fn(ctx, username, password)}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
