package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ██████╗ ███████╗ █████╗ ███╗   ██╗
 ██╔══██╗██╔════╝██╔══██╗████╗  ██║
 ██████╔╝█████╗  ███████║██╔██╗ ██║
 ██╔══██╗██╔══╝  ██╔══██║██║╚██╗██║
 ██████╔╝███████╗██║  ██║██║ ╚████║
 ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝
`

func (a *App) renderWelcome() string {
	// Logo
	logoRendered := styleLogo.Render(logo)

	// Subtitle
	subtitle := styleSubtitle.Render("IEEE Auto-Doc Agent")

	// Connection status
	var status string
	switch {
	case a.state.providerError != nil:
		status = lipgloss.NewStyle().Foreground(colorError).
			Render("\nOffline mode: " + truncate(a.state.providerError.Error(), 60))
	case a.state.providerReady:
		status = lipgloss.NewStyle().Foreground(colorSuccess).
			Render("\nConnected to " + a.state.config.Provider)
	default:
		status = styleSubtitle.Render("\nConnecting...")
	}

	// Instructions
	instructions := styleSubtitle.Render("\nPaste your event notes below to get started")

	// Input
	var inputView string
	if a.state.session != nil {
		inputView = "\n" + styleBox.Width(64).Render(a.state.input.View())
	}

	// Status bar
	statusBar := styleStatusBar.Render("[Esc] Quit  /help Commands")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		status,
		instructions,
		inputView,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
