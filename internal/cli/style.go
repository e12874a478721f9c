package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles decorate everything the session prints except result tables,
// which must keep their exact widths.
type Styles struct {
	Title  func(strs ...string) string
	Prompt func(strs ...string) string
	Error  func(strs ...string) string
	Info   func(strs ...string) string
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

// PlainStyles leaves text untouched.
func PlainStyles() Styles {
	return Styles{Title: plain, Prompt: plain, Error: plain, Info: plain}
}

// ColorStyles renders for the terminal behind w.
func ColorStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:  r.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true).Render,
		Prompt: r.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Render,
		Error:  r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render,
		Info:   r.NewStyle().Foreground(lipgloss.Color("#10B981")).Render,
	}
}
