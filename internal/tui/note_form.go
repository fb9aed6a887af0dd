package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// noteForm is the title + content editor used both for new notes and for
// inline edits.
type noteForm struct {
	title   textinput.Model
	content textarea.Model
	// onContent is true when the content area has focus.
	onContent bool
}

func newNoteForm(title, content string) noteForm {
	ti := textinput.New()
	ti.Placeholder = "title"
	ti.Width = 54
	ti.SetValue(title)
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "content"
	ta.SetWidth(54)
	ta.SetHeight(6)
	ta.ShowLineNumbers = false
	ta.SetValue(content)
	ta.Blur()

	return noteForm{title: ti, content: ta}
}

func (f *noteForm) values() (title, content string) {
	return f.title.Value(), f.content.Value()
}

// update switches focus on tab/shift+tab and feeds other messages to the
// focused widget. changed reports whether a value was modified.
func (f *noteForm) update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.tab, keys.backtab) {
		f.onContent = !f.onContent
		if f.onContent {
			f.title.Blur()
			return f.content.Focus(), false
		}
		f.content.Blur()
		return f.title.Focus(), false
	}

	beforeTitle, beforeContent := f.values()
	if f.onContent {
		f.content, cmd = f.content.Update(msg)
	} else {
		f.title, cmd = f.title.Update(msg)
	}
	afterTitle, afterContent := f.values()

	return cmd, beforeTitle != afterTitle || beforeContent != afterContent
}

func (f *noteForm) render() string {
	var b strings.Builder
	b.WriteString("Title:\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\nContent:\n")
	b.WriteString(f.content.View())
	return b.String()
}
