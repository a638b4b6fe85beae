package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"bean/internal/config"
	"bean/internal/llm"
	"bean/internal/render"
	"bean/internal/report"
	"bean/internal/session"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewChat
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(logger *log.Logger) *App {
	s := newState(logger)

	// Check if setup needed
	cfg, _ := config.Load()
	if cfg == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = cfg
	}
	s.renderer = render.NewRenderer(s.config.TemplatePath)

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.connectProvider(),
	)
}

// connectProvider builds the provider and pings it. Failure is not fatal:
// the session still runs on its offline fallback paths.
func (a *App) connectProvider() tea.Cmd {
	return func() tea.Msg {
		provider, err := llm.NewProvider(a.state.config)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewWelcome
		return a, a.connectProvider()

	case setupErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.provider = msg.provider
		a.state.session = session.New(msg.provider, a.state.config.Model, a.state.logger)
		a.syncSnapshots()
		a.state.input.Focus()
		return a, textinput.Blink

	case providerErrorMsg:
		// Run degraded: extraction keeps the record, clarification uses
		// the deterministic fallback.
		a.state.providerError = msg.error
		a.state.session = session.New(nil, a.state.config.Model, a.state.logger)
		a.syncSnapshots()
		a.state.input.Focus()
		return a, textinput.Blink

	case turnDoneMsg:
		a.state.thinking = false
		a.state.rec = msg.rec
		a.state.transcript = msg.transcript
		return a, nil

	case saveDoneMsg:
		if a.view == viewWelcome {
			a.view = viewChat
		}
		if msg.err != nil {
			a.state.saveError = renderErrorText(msg.err)
			a.state.saveNotice = ""
		} else {
			a.state.saveNotice = fmt.Sprintf("Report saved to %s", msg.path)
			a.state.saveError = ""
		}
		return a, nil

	case tickMsg:
		if a.state.thinking {
			a.state.spinnerFrame++
			return a, tick()
		}
		return a, nil
	}

	// Update text inputs based on view
	if a.view == viewSetup && a.state.setupStep == 1 {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if (a.view == viewWelcome || a.view == viewChat) && !a.state.thinking {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewChat
			return nil
		}
		if a.view == viewSetup && a.state.setupStep == 1 {
			a.state.setupStep = 0
			a.state.apiKeyInput.Reset()
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Save):
		if a.view == viewChat || a.view == viewWelcome {
			return a.saveReport()
		}

	case key.Matches(msg, keys.Enter):
		if (a.view == viewWelcome || a.view == viewChat) && a.state.session != nil && !a.state.thinking {
			return a.handleInput()
		}
	}

	// View-specific handling
	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	// Handle slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case cmd == "/save":
			a.state.input.Reset()
			return a.saveReport()
		case cmd == "/reset":
			a.state.session.Reset()
			a.syncSnapshots()
			a.state.saveNotice = ""
			a.state.saveError = ""
			a.state.input.Reset()
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
	}

	a.view = viewChat
	a.state.input.Reset()
	a.state.thinking = true
	a.state.saveNotice = ""
	a.state.saveError = ""
	return tea.Batch(a.processTurn(input), tick())
}

func (a *App) processTurn(text string) tea.Cmd {
	sess := a.state.session
	return func() tea.Msg {
		sess.Turn(context.Background(), text)
		return turnDoneMsg{rec: sess.Record(), transcript: sess.Transcript()}
	}
}

// syncSnapshots refreshes the view snapshots from the session. Called from
// Update only, and never while a turn is in flight.
func (a *App) syncSnapshots() {
	if a.state.session == nil {
		return
	}
	a.state.rec = a.state.session.Record()
	a.state.transcript = a.state.session.Transcript()
}

func (a *App) saveReport() tea.Cmd {
	if a.state.session == nil {
		return func() tea.Msg {
			return saveDoneMsg{err: fmt.Errorf("no active conversation")}
		}
	}
	rec := a.state.rec
	renderer := a.state.renderer
	return func() tea.Msg {
		out, err := renderer.Render(rec)
		if err != nil {
			return saveDoneMsg{err: err}
		}
		path := fmt.Sprintf("ieee_report_%s.docx", time.Now().Format("20060102_150405"))
		if err := os.WriteFile(path, out, 0644); err != nil {
			return saveDoneMsg{err: err}
		}
		return saveDoneMsg{path: path}
	}
}

func renderErrorText(err error) string {
	if re, ok := err.(*render.RenderError); ok {
		return re.UserMessage()
	}
	return err.Error()
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel

			if provider.NeedsAPIKey && os.Getenv(provider.EnvVar) == "" {
				a.state.setupStep = 1
				a.state.apiKeyInput.Focus()
				return textinput.Blink
			}
			return a.finishSetup()
		}

	case 1: // API key entry
		switch msg.String() {
		case "enter":
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			return a.finishSetup()
		}
	}

	return nil
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }
type turnDoneMsg struct {
	rec        report.Record
	transcript []session.Message
}
type saveDoneMsg struct {
	path string
	err  error
}
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewSetup:
		return a.renderSetup()
	case viewChat:
		return a.renderChat()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
