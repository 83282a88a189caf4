// Package ui renders the tool's human-facing output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	bullet      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).SetString("  → ")
)

// Summary renders a header line followed by the written output paths.
func Summary(header string, outputs []string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	for _, out := range outputs {
		b.WriteString("\n")
		b.WriteString(bullet.String())
		b.WriteString(pathStyle.Render(out))
	}
	return b.String()
}
