package main

import "github.com/charmbracelet/lipgloss"

var (
	styleBold  = lipgloss.NewStyle().Bold(true)
	styleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
