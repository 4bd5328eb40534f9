package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wordWrap breaks s into lines no wider than width terminal cells.
func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
