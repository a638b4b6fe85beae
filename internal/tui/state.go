package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"bean/internal/config"
	"bean/internal/llm"
	"bean/internal/render"
	"bean/internal/report"
	"bean/internal/session"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Conversation
	session  *session.Session
	renderer *render.Renderer
	logger   *log.Logger

	// Snapshots rendered by the views. Turn results arrive by message and
	// are applied here in Update; views never read the session directly,
	// so a turn in flight cannot race the render loop.
	rec        report.Record
	transcript []session.Message

	// Turn in flight
	thinking     bool
	spinnerFrame int

	// Save feedback
	saveNotice string
	saveError  string

	// Input
	input textinput.Model

	// Provider
	provider      llm.Provider
	providerReady bool
	providerError error
}

func newState(logger *log.Logger) *state {
	input := textinput.New()
	input.Placeholder = "Paste event notes, or /help for commands..."
	input.CharLimit = 2000
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	return &state{
		input:       input,
		apiKeyInput: apiKey,
		logger:      logger,
		rec:         report.Initial(),
	}
}
