package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	idStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)
)

// labelNames renders labels as face or color names depending on the
// enumeration they belong to.
func labelNames(k tables.Kind, labels []cube.Label) string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = labelName(k, l)
	}
	return strings.Join(names, " ")
}

func labelName(k tables.Kind, l cube.Label) string {
	if k.IsFace() {
		return cube.Face(l).String()
	}
	return cube.Color(l).String()
}
