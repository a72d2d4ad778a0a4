package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the picker
type Styles struct {
	Prompt      lipgloss.Style
	Query       lipgloss.Style
	Cursor      lipgloss.Style
	Marker      lipgloss.Style
	Candidate   lipgloss.Style
	SelectionBg lipgloss.Style
	Score       lipgloss.Style
	Count       lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Query:       lipgloss.NewStyle().Bold(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Candidate:   lipgloss.NewStyle(),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Score:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
