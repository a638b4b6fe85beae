package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"bean/internal/config"
	"bean/internal/tui"
)

var version = "dev"

func main() {
	// Credentials may live in a local .env; absence is fine.
	_ = godotenv.Load()

	logger := newLogger()

	app := tui.NewApp(logger)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to a log file; the terminal belongs to the TUI.
func newLogger() *log.Logger {
	dir, err := config.ConfigDir()
	if err != nil {
		return log.New(io.Discard)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, "bean.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(io.Discard)
	}
	logger := log.New(f)
	logger.SetReportTimestamp(true)
	return logger
}
