package tui

import "github.com/mmcdole/shopr/internal/tui/components"

// Layout proportions
const (
	InspectorPercent  = 35
	MinInspectorWidth = 28
	MinGridWidth      = components.MinCardWidth + components.BorderWidth

	// Vertical layout: single footer line
	ChromeHeight = 1
)

// bodyLayout holds calculated pane sizes for the View
type bodyLayout struct {
	gridWidth      int
	inspectorWidth int // 0 if not shown
	height         int
}

// calculateLayout computes pane sizes from the terminal size and inspector visibility
func (m Model) calculateLayout() bodyLayout {
	layout := bodyLayout{
		gridWidth: m.Width,
		height:    max(m.Height-components.FormHeight-ChromeHeight, components.CardHeight+components.BorderHeight),
	}

	if !m.ShowInspector {
		return layout
	}

	inspector := max(m.Width*InspectorPercent/100, MinInspectorWidth)
	if m.Width-inspector < MinGridWidth {
		// Too narrow for both panes
		return layout
	}
	layout.inspectorWidth = inspector
	layout.gridWidth = m.Width - inspector
	return layout
}

// updateLayout pushes pane sizes into the components
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	layout := m.calculateLayout()
	m.Form.SetWidth(m.Width)
	m.Grid.SetSize(layout.gridWidth, layout.height)
	if layout.inspectorWidth > 0 {
		m.Inspector.SetSize(layout.inspectorWidth, layout.height)
	}
}
