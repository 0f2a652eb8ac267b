package style

import "github.com/charmbracelet/lipgloss"

// Dark base of the landing page with the player's red accents.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Surface = lipgloss.Color("#313244")
	Overlay = lipgloss.Color("#6c7086")
	Text    = lipgloss.Color("#cdd6f4")

	Crimson = lipgloss.Color("#e50914")
	Coral   = lipgloss.Color("#ff6b6b")
	Green   = lipgloss.Color("#a6e3a1")
	Red     = lipgloss.Color("#f38ba8")

	AccentColor  = Coral
	SuccessColor = Green
	ErrorColor   = Red
)
