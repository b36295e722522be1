package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors for console output - Muted Professional Palette
var (
	ColorPrimary = lipgloss.Color("#A78BFA") // Soft Purple (Lavender 400)
	ColorSuccess = lipgloss.Color("#059669") // Emerald 600 (muted green)
	ColorWarning = lipgloss.Color("#D97706") // Amber 600 (muted amber)
	ColorError   = lipgloss.Color("#DC2626") // Red 600 (muted red)
	ColorMuted   = lipgloss.Color("#9CA3AF") // Neutral Gray (Gray 400)
	ColorInfo    = lipgloss.Color("#2DD4BF") // Teal Info (Teal 400)
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// Out is where console messages go. Tests swap it out.
var Out io.Writer = os.Stdout

// Successf prints a success message with a check icon.
func Successf(format string, args ...any) {
	fmt.Fprintln(Out, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Errorf prints an error message with a cross icon.
func Errorf(format string, args ...any) {
	fmt.Fprintln(Out, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Warnf prints a warning message.
func Warnf(format string, args ...any) {
	fmt.Fprintln(Out, warnStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Infof prints an informational message.
func Infof(format string, args ...any) {
	fmt.Fprintln(Out, infoStyle.Render("ℹ "+fmt.Sprintf(format, args...)))
}

// Mutedf prints a dimmed message.
func Mutedf(format string, args ...any) {
	fmt.Fprintln(Out, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Headerf prints a bold section header.
func Headerf(format string, args ...any) {
	fmt.Fprintln(Out, headerStyle.Render(fmt.Sprintf(format, args...)))
}

// Plainf prints an unstyled message.
func Plainf(format string, args ...any) {
	fmt.Fprintf(Out, format+"\n", args...)
}
