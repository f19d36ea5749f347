package chat

import "github.com/charmbracelet/lipgloss"

var (
	stylePrompt  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleReply   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleBold    = lipgloss.NewStyle().Bold(true)
	styleFaint   = lipgloss.NewStyle().Faint(true)
)
