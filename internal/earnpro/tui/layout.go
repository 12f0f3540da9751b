package tui

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

const (
	layoutBreakpointSingle  = 50
	layoutBreakpointStacked = 80
)

const (
	LayoutModeSingle  = "single"
	LayoutModeStacked = "stacked"
	LayoutModeDual    = "dual"
)

func layoutMode(width int) string {
	switch {
	case width < layoutBreakpointSingle:
		return LayoutModeSingle
	case width < layoutBreakpointStacked:
		return LayoutModeStacked
	default:
		return LayoutModeDual
	}
}

func renderFrame(header, body, footer string) string {
	return strings.Join([]string{header, body, footer}, "\n")
}

// visibleWidth measures printable width, ignoring ANSI escapes.
func visibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

func padRight(s string, width int) string {
	if gap := width - visibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 || visibleWidth(s) <= width {
		return s
	}
	cut := width - 1
	runes := []rune(s)
	if cut > len(runes) {
		cut = len(runes)
	}
	return string(runes[:cut]) + "…"
}

// joinColumns lays two blocks side by side, the left one fixed-width.
func joinColumns(left, right []string, leftWidth int) string {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		b.WriteString(padRight(l, leftWidth))
		b.WriteString("  ")
		b.WriteString(r)
		if i < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// centerBlock positions content in the middle of a width×height area.
func centerBlock(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	blockWidth := 0
	for _, line := range lines {
		if w := visibleWidth(line); w > blockWidth {
			blockWidth = w
		}
	}
	leftPad := (width - blockWidth) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	indent := strings.Repeat(" ", leftPad)
	for i, line := range lines {
		lines[i] = indent + line
	}
	topPad := (height - len(lines)) / 2
	if topPad < 0 {
		topPad = 0
	}
	return strings.Repeat("\n", topPad) + strings.Join(lines, "\n")
}
