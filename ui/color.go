package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConfigureColor sets the color profile used by every style in this package.
// Output that is not a terminal, or a terminal with NO_COLOR set, gets no
// escape sequences at all.
func ConfigureColor(isTerminal bool) termenv.Profile {
	profile := termenv.Ascii
	if isTerminal && os.Getenv("NO_COLOR") == "" {
		profile = termenv.EnvColorProfile()
	}
	lipgloss.SetColorProfile(profile)
	return profile
}
