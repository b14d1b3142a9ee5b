package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// styles bundles every lipgloss style the views use. Built once at
// startup from the configured theme.
type styles struct {
	title      lipgloss.Style
	redCard    lipgloss.Style
	blackCard  lipgloss.Style
	faceDown   lipgloss.Style
	emptySlot  lipgloss.Style
	cursor     lipgloss.Style
	selected   lipgloss.Style
	statusBar  lipgloss.Style
	statusErr  lipgloss.Style
	footer     lipgloss.Style
	paletteSel lipgloss.Style
	paletteDim lipgloss.Style
}

// newStyles returns the style set for a theme. Any theme other than
// "plain" gets the dark palette; "plain" leaves everything unstyled for
// terminals without true color.
func newStyles(theme string) styles {
	if theme == "plain" {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain, redCard: plain, blackCard: plain, faceDown: plain,
			emptySlot: plain, cursor: plain.Reverse(true), selected: plain.Bold(true),
			statusBar: plain, statusErr: plain, footer: plain,
			paletteSel: plain.Reverse(true), paletteDim: plain,
		}
	}
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(colorLavender),
		redCard:    lipgloss.NewStyle().Foreground(colorRed),
		blackCard:  lipgloss.NewStyle().Foreground(colorText),
		faceDown:   lipgloss.NewStyle().Foreground(colorOverlay),
		emptySlot:  lipgloss.NewStyle().Foreground(colorSurface),
		cursor:     lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
		selected:   lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		statusBar:  lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1),
		statusErr:  lipgloss.NewStyle().Foreground(colorRed).Background(colorSurface).Padding(0, 1),
		footer:     lipgloss.NewStyle().Foreground(colorSubtext).Background(colorMantle).Padding(0, 1),
		paletteSel: lipgloss.NewStyle().Foreground(colorLavender).Bold(true),
		paletteDim: lipgloss.NewStyle().Foreground(colorSubtext),
	}
}
