package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// panelFields are the rows of the live report panel; speaker_name is shown
// even though it never blocks completeness.
var panelFields = []struct {
	field string
	label string
}{
	{"event_title", "Title"},
	{"date", "Date"},
	{"speaker_name", "Speaker"},
	{"attendance_count", "Attendance"},
	{"duration_hours", "Duration"},
	{"executive_summary", "Summary"},
	{"key_takeaways", "Takeaways"},
}

func (a *App) renderReportPanel(width int) string {
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Report Status")

	var rows []string
	rec := a.state.rec

	for _, pf := range panelFields {
		mark := lipgloss.NewStyle().Foreground(colorMuted).Render("·")
		if rec.FieldKnown(pf.field) {
			mark = lipgloss.NewStyle().Foreground(colorSuccess).Render("✓")
		}
		value := truncate(rec.FieldDisplay(pf.field), width-16)
		rows = append(rows, fmt.Sprintf("%s %-10s %s", mark, pf.label,
			styleSubtitle.Render(value)))
	}

	rows = append(rows, "")
	if rec.IsComplete() {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(colorSuccess).Bold(true).
			Render("Complete — Ctrl+S to save"))
	} else {
		rows = append(rows, styleSubtitle.Render(
			fmt.Sprintf("%d field(s) missing", len(rec.MissingInfo))))
	}

	body := styleBox.Width(width - 2).Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}
