package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Loading messages shown while a turn is being analyzed
var loadingMessages = []string{
	"Analyzing text...",
	"Extracting details...",
	"Updating the report...",
	"Checking what's missing...",
}

// Spinner frames for animation
var spinnerFrames = []string{"|", "/", "-", "\\"}

func (a *App) renderChat() string {
	panelWidth := 34
	chatWidth := a.width - panelWidth - 4
	if chatWidth < 40 {
		chatWidth = a.width - 2
		panelWidth = 0
	}

	header := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Bean — IEEE Auto-Doc Agent")

	// === TRANSCRIPT ===
	var messageLines []string
	for _, msg := range a.state.transcript {
		content := wrapText(msg.Content, chatWidth-6)
		if msg.Role == "user" {
			for _, line := range strings.Split(content, "\n") {
				messageLines = append(messageLines,
					lipgloss.NewStyle().Foreground(colorSecondary).Render("> "+line))
			}
		} else {
			for _, line := range strings.Split(content, "\n") {
				messageLines = append(messageLines,
					lipgloss.NewStyle().Foreground(colorWhite).Render("  "+line))
			}
		}
		messageLines = append(messageLines, "")
	}

	// Spinner while a turn is in flight
	if a.state.thinking {
		frame := spinnerFrames[a.state.spinnerFrame%len(spinnerFrames)]
		loading := loadingMessages[(a.state.spinnerFrame/7)%len(loadingMessages)]
		messageLines = append(messageLines,
			styleSubtitle.Render("  "+frame+" "+loading))
	}

	// Save feedback
	if a.state.saveNotice != "" {
		messageLines = append(messageLines,
			lipgloss.NewStyle().Foreground(colorSuccess).Render("  "+a.state.saveNotice))
	}
	if a.state.saveError != "" {
		for _, line := range strings.Split(wrapText(a.state.saveError, chatWidth-4), "\n") {
			messageLines = append(messageLines,
				lipgloss.NewStyle().Foreground(colorError).Render("  "+line))
		}
	}

	// Keep only the lines that fit above the input
	availableHeight := a.height - 6
	if availableHeight < 5 {
		availableHeight = 5
	}
	if len(messageLines) > availableHeight {
		messageLines = messageLines[len(messageLines)-availableHeight:]
	}
	transcript := strings.Join(messageLines, "\n")

	// === INPUT ===
	inputBox := styleBox.Width(chatWidth).Render(a.state.input.View())

	statusBar := styleStatusBar.Render("[Enter] Send  [Ctrl+S] Save report  [Esc] Quit  /help")

	chatColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		lipgloss.NewStyle().Height(availableHeight).Render(transcript),
		inputBox,
		statusBar,
	)

	if panelWidth == 0 {
		return chatColumn
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(chatWidth+2).Render(chatColumn),
		a.renderReportPanel(panelWidth),
	)
}
