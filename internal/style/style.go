package style

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	SplashPath   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")) // Bright white
	SplashCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // Bright red
	SplashTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228"))

	SettingsTitle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	SettingsItem         = lipgloss.NewStyle()
	SettingsItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple
	WalkHeader           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))  // Green

	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

// Hex formats c as #RRGGBB.
func (c RGB) Hex() string {
	return GenerateHexColor(c.R, c.G, c.B)
}

// GenerateHexColor generates a #RRGGBB string; r, g, b are clamped to 0-255.
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

func clamp(v int) int {
	return max(0, min(255, v))
}

// Blend mixes a toward b; t = 0 gives a, t = 1 gives b.
func Blend(a, b RGB, t float64) RGB {
	t = max(0, min(1, t))
	mix := func(x, y int) int {
		return x + int(math.Round(float64(y-x)*t))
	}
	return RGB{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B)}
}
