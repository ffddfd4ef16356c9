package components

import (
	"fmt"

	"github.com/mmcdole/shopr/internal/tui/styles"
)

// RenderPager renders "← Prev  Page N  Next →", dimming directions that are unavailable
func RenderPager(page int, hasPrev, hasNext bool) string {
	prev := styles.DimStyle.Render("← Prev")
	if hasPrev {
		prev = styles.AccentStyle.Render("←") + " Prev"
	}

	next := styles.DimStyle.Render("Next →")
	if hasNext {
		next = "Next " + styles.AccentStyle.Render("→")
	}

	current := styles.TitleStyle.Render(fmt.Sprintf("Page %d", page))
	return prev + "  " + current + "  " + next
}
