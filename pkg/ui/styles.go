package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type StyleFunc func(...string) string

var (
	Normal      = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}
	BrightGray  = lipgloss.AdaptiveColor{Light: "#847A85", Dark: "#979797"}
	Gray        = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	Green       = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	DimGreen    = lipgloss.AdaptiveColor{Light: "#72D2B0", Dark: "#0B5137"}
	Red         = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	Tomato      = lipgloss.AdaptiveColor{Light: "#FF6347", Dark: "#FF6347"}
	InstaOrange = lipgloss.AdaptiveColor{Light: "#fa7e1e", Dark: "#fa7e1e"}
	InstaYellow = lipgloss.AdaptiveColor{Light: "#feda75", Dark: "#feda75"}
	Subtle      = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}

	// gradient endpoints for the emoji lane and title
	GradientFrom = Tomato.Dark
	GradientTo   = InstaYellow.Dark

	NormalFg   StyleFunc = lipgloss.NewStyle().Foreground(Normal).Render
	GrayFg     StyleFunc = lipgloss.NewStyle().Foreground(Gray).Render
	GreenFg    StyleFunc = lipgloss.NewStyle().Foreground(Green).Render
	DimGreenFg StyleFunc = lipgloss.NewStyle().Foreground(DimGreen).Render
	RedFg      StyleFunc = lipgloss.NewStyle().Foreground(Red).Render

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(BrightGray)

	ActiveTabStyle = TabStyle.
			Bold(true).
			Foreground(Tomato).
			Underline(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Tomato).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(BrightGray)

	FocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(InstaOrange)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(Tomato)

	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Tomato).
			Padding(1, 2)

	DetailStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Subtle).
			PaddingLeft(1)

	ErrorBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(Red).
			Padding(0, 1)
)
