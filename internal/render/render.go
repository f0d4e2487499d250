// Package render lays out full-screen pages for the terminal models.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/style"
)

// topPattern is repeated across the page top, a path drawn in box glyphs.
const topPattern = "─╱─╲"

// Page renders a title line, the content block centered in the space left and
// a footer, then centers the page on the terminal when its size is known.
// The content keeps its own styling.
func Page(title, content, footer string, width, height, termWidth, termHeight int) string {
	top := style.TopPattern.Render(Pattern(width))
	head := style.Title.Render(title)
	foot := style.Footer.Render(footer)

	free := max(0, height-lipgloss.Height(top)-lipgloss.Height(head)-lipgloss.Height(foot))
	body := lipgloss.PlaceVertical(free, lipgloss.Center, content)

	view := lipgloss.JoinVertical(lipgloss.Left, top, head, body, foot)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Pattern returns exactly width cells of the top pattern.
func Pattern(width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(strings.Repeat(topPattern, width/len([]rune(topPattern))+1))
	return string(runes[:width])
}

// Fields renders aligned "label value" rows.
func Fields(rows ...[2]string) string {
	w := 0
	for _, r := range rows {
		w = max(w, lipgloss.Width(r[0]))
	}
	label := lipgloss.NewStyle().Width(w + 2).Foreground(lipgloss.Color("241"))
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, label.Render(r[0]), r[1])
	}
	return strings.Join(lines, "\n")
}
