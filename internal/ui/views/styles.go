package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Counter     lipgloss.Style
	Heading     lipgloss.Style
	Header      lipgloss.Style
	Paragraph   lipgloss.Style
	Arrow       lipgloss.Style
	ArrowHolo   lipgloss.Style
	DotActive   lipgloss.Style
	Dot         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Prompt      lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginBottom(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1),
		Paragraph:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Arrow:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		ArrowHolo:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		DotActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Dot:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Empty:       lipgloss.NewStyle().Faint(true).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}

// CardStyle returns the border style for a card kind
func CardStyle(card string, rounded bool, width int) lipgloss.Style {
	border := lipgloss.NormalBorder()
	color := lipgloss.Color("241")
	switch {
	case card == "holo":
		border = lipgloss.DoubleBorder()
		color = lipgloss.Color("213")
	case rounded:
		border = lipgloss.RoundedBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Padding(1, 2).
		Width(width)
}
