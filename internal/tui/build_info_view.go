package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-notes\n")
	b.WriteString(strings.Join(info.Lines(), "\n"))

	return renderPage("ABOUT", b.String(), "esc: back")
}
