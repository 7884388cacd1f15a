package ui

import "github.com/charmbracelet/lipgloss"

// Colors are adaptive so reports read on light and dark terminals.
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#5B3FD1", Dark: "#9D85FF"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	ColorText  = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}
	ColorLabel = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	ColorMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// ColorExact marks a row layout that lands on the standard height.
	ColorExact = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"}
	// ColorCapped marks a cap that lowered the height, or a cap that was skipped.
	ColorCapped = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	// ColorInvalid marks input the calculator rejected.
	ColorInvalid = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
)

// Icons repeat the status colors as shapes, for monochrome output.
const (
	IconSuccess = "+"
	IconWarning = "!"
	IconError   = "×"
)

// StatusStyles color values by outcome.
var StatusStyles = struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Success: lipgloss.NewStyle().Foreground(ColorExact),
	Warning: lipgloss.NewStyle().Foreground(ColorCapped),
	Error:   lipgloss.NewStyle().Foreground(ColorInvalid),
}

// TextStyles are the report's typographic roles.
var TextStyles = struct {
	Title     lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Primary:   lipgloss.NewStyle().Foreground(ColorText),
	Secondary: lipgloss.NewStyle().Foreground(ColorLabel),
	Muted:     lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
	Highlight: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
}

// CardPadding is the horizontal padding inside a card border.
const CardPadding = 1

// CardStyle is the bordered box around the form and the report.
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, CardPadding)
}

// FocusedCardStyle is CardStyle with the accent border, for the panel being edited.
func FocusedCardStyle() lipgloss.Style {
	return CardStyle().BorderForeground(ColorAccent)
}

// ErrorCardStyle is CardStyle for rejected input.
func ErrorCardStyle() lipgloss.Style {
	return CardStyle().BorderForeground(ColorInvalid)
}
