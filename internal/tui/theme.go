package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/timeflow/internal/pomodoro"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Task      lipgloss.Style
	Important lipgloss.Style
	Short     lipgloss.Style
	Work      lipgloss.Style
	Break     lipgloss.Style
	LongBreak lipgloss.Style
	Clock     lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Task:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Important: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Short:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		LongBreak: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Task:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Important: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Short:     lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		LongBreak: lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	},
}

// ThemeOrder is the cycle order for the theme toggle.
var ThemeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}

func nextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}

func phaseStyle(phase pomodoro.Phase) lipgloss.Style {
	switch phase {
	case pomodoro.PhaseWork:
		return CurrentTheme.Work
	case pomodoro.PhaseShortBreak:
		return CurrentTheme.Break
	case pomodoro.PhaseLongBreak:
		return CurrentTheme.LongBreak
	default:
		return CurrentTheme.Dim
	}
}
