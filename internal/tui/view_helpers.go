package tui

import (
	"strings"
)

const (
	pageIndent   = "  "
	globalKeys   = "f1: about │ ctrl+c: quit"
	dividerWidth = 54
)

var uiDivider = strings.Repeat("─", dividerWidth)

// renderPage frames body between two dividers under title. Page specific
// hot keys go above the global ones.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	sections := []string{
		titleStyle.Render(title),
		indent(uiDivider) + "\n",
		indent(body) + "\n",
		indent(uiDivider),
	}
	if strings.TrimSpace(hotKeys) != "" {
		sections = append(sections, indent(helpStyle.Render(hotKeys)))
	}
	sections = append(sections, indent(helpStyle.Render(globalKeys)))

	return strings.Join(sections, "\n")
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pageIndent + line
	}
	return strings.Join(lines, "\n")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func firstLine(v string) string {
	line, _, _ := strings.Cut(v, "\n")
	return line
}
