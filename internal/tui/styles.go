package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/issuekit/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color

	Markdown lipgloss.Color
	Form     lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red

	TitleNormal:   lipgloss.Color("#DFE6E9"),
	TitleSelected: lipgloss.Color("#FFEAA7"),
	DescNormal:    lipgloss.Color("#636E72"),
	DescSelected:  lipgloss.Color("#B2BEC3"),

	Markdown: lipgloss.Color("#74B9FF"), // Light blue
	Form:     lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style

	ItemNormal       lipgloss.Style
	ItemSelected     lipgloss.Style
	ItemDesc         lipgloss.Style
	ItemDescSelected lipgloss.Style
	ItemLabels       lipgloss.Style
	CursorNormal     lipgloss.Style
	CursorSelected   lipgloss.Style
	FormatMarkdown   lipgloss.Style
	FormatForm       lipgloss.Style

	Preview      lipgloss.Style
	PreviewTitle lipgloss.Style

	Footer   lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		ItemNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		ItemDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		ItemDescSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		ItemLabels: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		FormatMarkdown: lipgloss.NewStyle().
			Foreground(Colors.Markdown),

		FormatForm: lipgloss.NewStyle().
			Foreground(Colors.Form),

		Preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),

		PreviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// FormatStyle returns the badge style for a template format.
func (s Styles) FormatStyle(format domain.Format) lipgloss.Style {
	if format == domain.FormatForm {
		return s.FormatForm
	}
	return s.FormatMarkdown
}

// FormatBadge returns the short badge text for a template format.
func FormatBadge(format domain.Format) string {
	if format == domain.FormatForm {
		return "form"
	}
	return "md"
}
