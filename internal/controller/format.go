package controller

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const candidatePreviewWidth = 32

// candidatesPreview renders the candidates of a pool on one line, quoted,
// cut to width.
func candidatesPreview(candidates []string, width int) string {
	quoted := make([]string, 0, len(candidates))
	for _, c := range candidates {
		quoted = append(quoted, strconv.Quote(c))
	}

	return truncateToWidth(strings.Join(quoted, " "), width)
}

func trimNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

// oneLine quotes s so control characters and newlines stay on one line.
func oneLine(s string, width int) string {
	return truncateToWidth(strconv.Quote(s), width)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
