package report

import (
	"math"
	"strings"
)

const (
	// BarWidth is the number of cells in a fill-bar.
	BarWidth = 12

	barFill  = "█"
	barEmpty = " "
)

// Bar renders percent as a BarWidth-cell gauge. The fill count is
// floor(percent/100*BarWidth) clamped to [0, BarWidth]; NaN renders empty.
func Bar(percent float64) string {
	filled := 0
	if !math.IsNaN(percent) {
		f := math.Floor(percent / 100 * BarWidth)
		filled = int(max(0, min(BarWidth, f)))
	}
	return strings.Repeat(barFill, filled) + strings.Repeat(barEmpty, BarWidth-filled)
}
