package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Lip Gloss styles for command output.
// All colors are specified using hex codes.

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff5fd2"))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff005f")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff5f")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffd75f")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5fd7ff")).
			Width(20)

	HelpStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("#a8a8a8"))

	// Box around the doctor summary
	SummaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5f5fff")).
			Padding(0, 1)
)

func printPass(w io.Writer, check, detail string) {
	fmt.Fprintf(w, "  %s %s %s\n", SuccessStyle.Render("[PASS]"), LabelStyle.Render(check), detail)
}

func printFail(w io.Writer, check, detail string) {
	fmt.Fprintf(w, "  %s %s %s\n", ErrorStyle.Render("[FAIL]"), LabelStyle.Render(check), detail)
}

func printWarn(w io.Writer, check, detail string) {
	fmt.Fprintf(w, "  %s %s %s\n", WarningStyle.Render("[WARN]"), LabelStyle.Render(check), detail)
}

// printField writes an aligned "label value" line.
func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render(label), value)
}
