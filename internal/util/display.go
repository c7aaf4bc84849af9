package util

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const defaultTermWidth = 80

// sparkRunes are the eight block heights used by Sparkline.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// GetDisplayWidth calculates the actual display width of a string
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads s with spaces to width display columns.
func PadString(s string, width int, leftAlign bool) string {
	actualWidth := GetDisplayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// TerminalWidth returns the width of stdout, or 80 when stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// Sparkline draws values as block characters no wider than width columns.
// Longer inputs are bucketed, keeping the maximum of each bucket.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	cellWidth := runewidth.RuneWidth(sparkRunes[0])
	if cellWidth <= 0 {
		cellWidth = 1
	}
	cells := width / cellWidth
	if cells <= 0 {
		return ""
	}

	buckets := values
	if len(values) > cells {
		buckets = make([]float64, cells)
		for i := range buckets {
			lo := i * len(values) / cells
			hi := (i + 1) * len(values) / cells
			m := values[lo]
			for _, v := range values[lo:hi] {
				if v > m {
					m = v
				}
			}
			buckets[i] = m
		}
	}

	lo, hi := buckets[0], buckets[0]
	for _, v := range buckets {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var sb strings.Builder
	top := len(sparkRunes) - 1
	for _, v := range buckets {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(top))
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}
