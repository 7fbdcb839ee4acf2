// Package ui handles terminal presentation concerns for the CLI: color
// capability detection and the small set of accents used when listing
// written artifacts.
package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ShouldUseColor reports whether ANSI colors should be used on stdout.
// It respects NO_COLOR, CLICOLOR_FORCE, CLICOLOR, and TTY detection.
func ShouldUseColor() bool {
	// https://no-color.org — any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

const (
	reset = "\x1b[0m"
	bold  = "\x1b[1m"
	cyan  = "\x1b[36m"
	green = "\x1b[32m"
)

// Heading accents a section line like "Saved:".
func Heading(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return bold + green + s + reset
}

// Path accents a written artifact path.
func Path(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return cyan + s + reset
}
