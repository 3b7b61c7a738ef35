package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - focused fields, modal borders
	ColorMuted     = "241" // Gray - hints, placeholders
	ColorText      = "252" // Light gray - normal text
	ColorPanel     = "236" // Sidebar background
	ColorBorder    = "245" // Sidebar border
)

// Styles contains shared style definitions used across the sidebar and dialogs.
var Styles = struct {
	Title  lipgloss.Style // Bold accent - page and modal titles
	Hint   lipgloss.Style // Help/hint text
	Normal lipgloss.Style
	Muted  lipgloss.Style // Placeholders, disabled rows

	Box lipgloss.Style // Modal box (rounded, highlight border)

	Sidebar       lipgloss.Style // Desktop column
	SidebarHeader lipgloss.Style // Mobile header bar
	SidebarPanel  lipgloss.Style // Mobile full-window overlay
	SidebarLabel  lipgloss.Style
	SidebarIcon   lipgloss.Style

	Field        lipgloss.Style // Unfocused dialog field
	FieldFocused lipgloss.Style
	Button       lipgloss.Style
	ButtonFocus  lipgloss.Style
	Option       lipgloss.Style
	OptionCursor lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Sidebar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Background(lipgloss.Color(ColorPanel)).
		Padding(1, 1),
	SidebarHeader: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPanel)).
		Foreground(lipgloss.Color(ColorText)),
	SidebarPanel: lipgloss.NewStyle().
		Background(lipgloss.Color("234")).
		Padding(1, 2),
	SidebarLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	SidebarIcon: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Field: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	FieldFocused: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 2),
	ButtonFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 2),
	Option: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	OptionCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
}

// NewCompactListDelegate returns a one-row, zero-spacing delegate for option lists.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.OptionCursor.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		PaddingLeft(1)
	d.Styles.NormalTitle = Styles.Option.PaddingLeft(2)
	return d
}
