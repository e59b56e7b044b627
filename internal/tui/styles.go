package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleOK       = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleSelected = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	styleCell     = lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("15"))
	styleHeader   = lipgloss.NewStyle().Bold(true).Underline(true)
	styleDraft    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleToast    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 4).
			Width(40).
			Align(lipgloss.Center)
	styleCardBack = styleCard.BorderForeground(lipgloss.Color("13"))
	stylePanel    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)
