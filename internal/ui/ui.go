// Package ui holds the lipgloss styles for the few pieces of structured
// terminal output: step headers and the public-key display block.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	keyBlockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Header renders a step heading for the linear setup flow.
func Header(title string) string {
	return headerStyle.Render("── " + title + " ──")
}

// KeyBlock renders a public key inside a bordered box so it stands out for
// copy-pasting into the hosting service's key registration page.
func KeyBlock(key string) string {
	return keyBlockStyle.Render(key)
}
