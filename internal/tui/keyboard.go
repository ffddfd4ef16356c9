package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shopr/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	// Handle state-specific keys
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	if m.Focus == PaneForm {
		return m.handleFormKey(msg)
	}

	// The filter input owns the keyboard while typing
	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		m.updateInspector()
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.SwitchPane), key.Matches(msg, Keys.EditSearch):
		return m, m.focusForm()

	case key.Matches(msg, Keys.Filter):
		if m.Grid.IsFiltering() {
			break // grid re-focuses its filter input
		}
		cmd := m.Grid.ToggleFilter()
		m.updateLayout()
		return m, cmd

	case key.Matches(msg, Keys.NextPage):
		return m, m.nextPage()

	case key.Matches(msg, Keys.PrevPage):
		return m, m.prevPage()

	case key.Matches(msg, Keys.Retry):
		return m, m.retry()

	case key.Matches(msg, Keys.Reset):
		return m, m.reset()

	case key.Matches(msg, Keys.Open):
		return m, m.openSelected()

	case key.Matches(msg, Keys.ToggleInspector):
		m.ShowInspector = !m.ShowInspector
		m.updateLayout()
		return m, nil
	}

	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	m.updateInspector()
	return m, cmd
}

// handleFormKey routes keys to the search form
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FormAction
	m.Form, cmd, action = m.Form.Update(msg)

	switch action {
	case components.FormEdited:
		m.editCriteria()
	case components.FormSubmit:
		return m, m.submit()
	case components.FormDismiss:
		m.focusGrid()
	}
	return m, cmd
}
