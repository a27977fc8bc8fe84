package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Prompt        lipgloss.Style
	Query         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Page          lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Marker        lipgloss.Style
	Language      lipgloss.Style
	Stars         lipgloss.Style
	Forks         lipgloss.Style
	Section       lipgloss.Style
	Key           lipgloss.Style
	Desc          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Query:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),              // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Page:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Language:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),            // blue
		Stars:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Forks:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// GetLanguageColor returns the color used for a repository language
func GetLanguageColor(language string) string {
	switch language {
	case "Go":
		return "39" // cyan blue
	case "Rust":
		return "208" // orange
	case "Python":
		return "220" // yellow
	case "":
		return "241" // gray
	default:
		return "33" // blue
	}
}
