package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/progression"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	bar, pct := progressBar(pct, width)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// RenderXPBar renders the level band like [██░░░░] 49 / 120 XP.
func RenderXPBar(xp progression.XPProgress, width int) string {
	bar, _ := progressBar(xp.Fraction, width)
	return fmt.Sprintf("[%s] %d / %d XP", StylePurple.Render(bar), xp.Earned, xp.Required)
}

func progressBar(pct float64, width int) (string, float64) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled), pct
}
