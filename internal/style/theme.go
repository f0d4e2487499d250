package style

import "github.com/charmbracelet/lipgloss"

// Palette colors the board and the exported frames.
type Palette struct {
	Background RGB
	Edge       RGB
	Point      RGB
	Trail      RGB
	Cursor     RGB
	Border     RGB
}

var (
	Day = Palette{
		Background: RGB{255, 255, 255},
		Edge:       RGB{96, 96, 96},
		Point:      RGB{0, 0, 0},
		Trail:      RGB{70, 130, 220},
		Cursor:     RGB{255, 0, 0},
		Border:     RGB{0, 160, 0},
	}
	Night = Palette{
		Background: RGB{16, 16, 32},
		Edge:       RGB{110, 110, 150},
		Point:      RGB{230, 230, 230},
		Trail:      RGB{240, 200, 60},
		Cursor:     RGB{255, 70, 70},
		Border:     RGB{0, 255, 0},
	}
)

// PaletteFor picks the palette of a theme name. The auto theme blends night
// into day by the ambient light intensity in [0, 1].
func PaletteFor(theme string, light float64) Palette {
	switch theme {
	case "day":
		return Day
	case "night":
		return Night
	}
	return Palette{
		Background: Blend(Night.Background, Day.Background, light),
		Edge:       Blend(Night.Edge, Day.Edge, light),
		Point:      Blend(Night.Point, Day.Point, light),
		Trail:      Blend(Night.Trail, Day.Trail, light),
		Cursor:     Blend(Night.Cursor, Day.Cursor, light),
		Border:     Blend(Night.Border, Day.Border, light),
	}
}

// Board holds the lipgloss styles derived from a palette.
type Board struct {
	Edge   lipgloss.Style
	Point  lipgloss.Style
	Trail  lipgloss.Style
	Cursor lipgloss.Style
	Blank  lipgloss.Style
}

// BoardStyles renders p into terminal styles over its background.
func BoardStyles(p Palette) Board {
	bg := lipgloss.Color(p.Background.Hex())
	fg := func(c RGB) lipgloss.Style {
		return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c.Hex()))
	}
	return Board{
		Edge:   fg(p.Edge),
		Point:  fg(p.Point).Bold(true),
		Trail:  fg(p.Trail).Bold(true),
		Cursor: fg(p.Cursor).Bold(true),
		Blank:  lipgloss.NewStyle().Background(bg),
	}
}
