package app

import (
	"github.com/byxorna/recipebox/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	darkStyle  = "dark"
	lightStyle = "light"
)

// glamourStyle picks the markdown style for the recipe detail pane
func glamourStyle(t config.Theme) string {
	switch t {
	case config.ThemeDark:
		return darkStyle
	case config.ThemeLight:
		return lightStyle
	}
	if termenv.HasDarkBackground() {
		return darkStyle
	}
	return lightStyle
}

// applyTheme pins lipgloss' adaptive colors when the theme is not auto
func applyTheme(t config.Theme) {
	switch t {
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
