package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// credentialsForm is the username/password pair shared by the login and
// register pages.
type credentialsForm struct {
	inputs []textinput.Model
	focus  int
}

func newCredentialsForm() credentialsForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return credentialsForm{inputs: []textinput.Model{username, password}}
}

func (f *credentialsForm) values() (username, password string) {
	return f.inputs[0].Value(), f.inputs[1].Value()
}

// update moves focus on tab/shift+tab and feeds everything else to the
// focused input.
func (f *credentialsForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.move(1)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.move(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *credentialsForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// render draws the form body with its submit button, notice and error.
func (f *credentialsForm) render(button string, submitting bool, notice, errMsg string) string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(f.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(f.inputs[1].View())
	b.WriteString("]\n")

	if submitting {
		b.WriteString("\n[" + button + "...]\n")
	} else {
		b.WriteString("\n[" + button + "]\n")
	}

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
