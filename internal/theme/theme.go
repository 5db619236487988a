// Package theme holds the Lip Gloss styles of the picker.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette roughly follows the in-game colours: banana yellow for focus,
// monkey brown behind the cursor row, red bloon for errors.
const (
	banana    = lipgloss.Color("220")
	monkey    = lipgloss.Color("94")
	bloonRed  = lipgloss.Color("196")
	bloonCamo = lipgloss.Color("71")
	text      = lipgloss.Color("252")
	muted     = lipgloss.Color("244")
	faint     = lipgloss.Color("239")
	ink       = lipgloss.Color("0")
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Summary               *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	FormTitle             *lipgloss.Style
}

var defaultStyles = build()

func build() Styles {
	plain := lipgloss.NewStyle()
	focusRow := plain.Background(monkey)
	return Styles{
		Item:                  ptr(plain.Foreground(text)),
		ItemIndicator:         ptr(plain.Foreground(faint)),
		SelectedItemIndicator: ptr(focusRow.Foreground(banana)),
		SelectedItem:          ptr(focusRow.Foreground(lipgloss.Color("231")).Bold(true)),
		Error:                 ptr(plain.Foreground(bloonRed).Bold(true)),
		Info:                  ptr(plain.Foreground(bloonCamo)),
		Header:                ptr(plain.Foreground(banana).Bold(true)),
		Summary:               ptr(plain.Foreground(muted).Italic(true)),
		Footer:                ptr(plain.Foreground(faint)),
		Filter:                ptr(plain.Foreground(text)),
		FilterPrompt:          ptr(plain.Foreground(bloonCamo).Bold(true)),
		FilterPlaceholder:     ptr(plain.Foreground(faint)),
		Cursor:                ptr(plain.Foreground(ink).Background(banana).Blink(true)),
		FormTitle:             ptr(plain.Foreground(banana).Bold(true)),
	}
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
