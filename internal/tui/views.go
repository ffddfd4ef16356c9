package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/tui/components"
	"github.com/mmcdole/shopr/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	layout := m.calculateLayout()
	body := m.Grid.View()
	if layout.inspectorWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.Inspector.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.Form.View(),
		body,
		m.renderFooter(),
	)
}

// renderFooter renders a single-line footer: status, pager and help hint
func (m Model) renderFooter() string {
	// Left side: spinner while loading, else the last failure or a status message
	var left string
	switch {
	case m.Search.Loading():
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Searching...")
	case m.Search.Err() != nil:
		left = styles.ErrorStyle.Render(errorText(m.Search.Err())) +
			styles.DimStyle.Render(" · ") + styles.AccentStyle.Render("r") + styles.DimStyle.Render(" retry")
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	center := components.RenderPager(m.Search.Page().Number, m.Search.HasPrev(), m.Search.HasNext())

	// Right side: "? help" hint
	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")
	if m.Focus == PaneForm {
		right = styles.AccentStyle.Render("esc") + styles.DimStyle.Render(" results")
	}

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space: the pager wins over the hint
		gap := max(m.Width-leftWidth-centerWidth, 1)
		return left + strings.Repeat(" ", gap) + center
	}

	// Center the pager in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// errorText turns a query failure into a one-line message
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrServerOffline):
		return "Catalog service unreachable"
	case errors.Is(err, domain.ErrQueryFailed):
		return "Search failed: " + strings.TrimPrefix(err.Error(), domain.ErrQueryFailed.Error()+": ")
	default:
		return "Search failed: " + err.Error()
	}
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
SEARCH FORM                     RESULTS
  Tab/S-Tab  Next/prev field       h/j/k/l    Move
  Enter      Search                g/G        First/last
  Esc        Go to results         /          Filter this page
                                   o/Enter    Open product
PAGES                              i          Toggle inspector
  n/PgDn     Next page             s/Tab      Edit search
  p/PgUp     Previous page         x          Reset search
  r          Reload page           q          Quit

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}
