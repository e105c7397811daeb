package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

var (
	colorYellow = lipgloss.Color("#eab308")
	colorRed    = lipgloss.Color("#f43f5e")
	colorMuted  = lipgloss.Color("#78716c")
	colorBlue   = lipgloss.Color("#60a5fa")
)

// newLogger returns the diagnostics logger. Styling is only applied when w
// is a terminal.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "img2text",
	})
	if isTerminal(w) {
		logger.SetStyles(logStyles())
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(colorYellow).
		Bold(true)

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(colorRed).
		Bold(true)

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(colorMuted)

	styles.Prefix = lipgloss.NewStyle().Foreground(colorBlue)
	styles.Key = lipgloss.NewStyle().Foreground(colorBlue)
	styles.Value = lipgloss.NewStyle().Foreground(colorMuted)

	return styles
}
