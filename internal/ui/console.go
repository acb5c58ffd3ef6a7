// Package ui is the console reporting collaborator. All user-facing output
// flows through a Console value holding an explicit writer, so components
// never print through a process-wide singleton and tests can capture output.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("4")).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Console writes styled output to w.
type Console struct {
	w io.Writer
}

// New returns a Console writing to w.
func New(w io.Writer) *Console { return &Console{w: w} }

// Panel prints a bordered banner with a bold title line and an optional
// dimmed subtitle.
func (c *Console) Panel(title, subtitle string) {
	body := titleStyle.Render(title)
	if subtitle != "" {
		body += "\n" + dimStyle.Render(subtitle)
	}
	fmt.Fprintln(c.w, panelStyle.Render(body))
}

// Section prints a bold section header.
func (c *Console) Section(text string) {
	fmt.Fprintln(c.w, sectionStyle.Render(text))
}

// Field prints a "label: value" line with a bold label.
func (c *Console) Field(label, value string) {
	fmt.Fprintf(c.w, "%s %s\n", boldStyle.Render(label+":"), value)
}

// Print writes a plain formatted line.
func (c *Console) Print(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

// Detail prints a dimmed line.
func (c *Console) Detail(format string, args ...any) {
	fmt.Fprintln(c.w, dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a green check-marked line.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warn prints a yellow line.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.w, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints a red line.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.w, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Blank prints an empty line.
func (c *Console) Blank() {
	fmt.Fprintln(c.w)
}
