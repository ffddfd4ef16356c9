package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
	"github.com/mmcdole/shopr/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Pane identifies which pane has keyboard focus
type Pane int

const (
	PaneForm Pane = iota
	PaneGrid
)

// Options configures the model
type Options struct {
	PageSize      int
	Columns       int
	Currency      string
	ShowInspector bool
	Categories    []string
	Availability  []string

	// Criteria pre-fills the form; the first load searches with it
	Criteria domain.SearchCriteria
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool
	Focus Pane

	// Services
	Searcher Searcher
	Opener   ProductOpener

	// Search state; shared by every copy of the model
	Search *search.View

	// UI Components
	Form      components.SearchForm
	Grid      components.Grid
	Inspector components.Inspector

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg     string
	StatusIsErr   bool
	SpinnerFrame  int
	ShowInspector bool
}

// NewModel creates a new application model
func NewModel(searcher Searcher, opener ProductOpener, opts Options) Model {
	view := search.NewView(opts.PageSize)
	view.SetOptions(domain.FieldCategory, opts.Categories)
	view.SetOptions(domain.FieldAvailability, opts.Availability)
	for _, field := range domain.Fields {
		// Values rendered by Criteria.Value always parse back
		_ = view.UpdateCriteria(field, opts.Criteria.Value(field))
	}

	form := components.NewSearchForm(map[domain.Field][]string{
		domain.FieldCategory:     opts.Categories,
		domain.FieldAvailability: opts.Availability,
	})
	form.SetValues(view.Criteria())
	form.Focus()

	grid := components.NewGrid(opts.Columns, opts.Currency)
	grid.SetHeader(view.Committed().Summary())

	return Model{
		State:         StateBrowsing,
		Focus:         PaneForm,
		Searcher:      searcher,
		Opener:        opener,
		Search:        view,
		Form:          form,
		Grid:          grid,
		Inspector:     components.NewInspector(opts.Currency),
		ShowInspector: opts.ShowInspector,
	}
}

// Init searches with the initial criteria (empty unless pre-filled)
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchPageCmd(m.Searcher, m.Search.Submit()),
		TickCmd(100*time.Millisecond),
		textinput.Blink,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case ResultsMsg:
		if !m.Search.Apply(msg.Seq, msg.Products) {
			return m, nil
		}
		m.Grid.SetProducts(m.Search.Results())
		m.updateHeader()
		m.updateInspector()
		return m, nil

	case QueryFailedMsg:
		// The footer renders the view's recorded error
		m.Search.Fail(msg.Seq, msg.Err)
		return m, nil

	case ProductOpenedMsg:
		m.StatusMsg = "Opened " + msg.Product.Name
		m.StatusIsErr = false
		return m, ClearStatusCmd(2 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other input-internal messages
	if m.Focus == PaneForm {
		var cmd tea.Cmd
		m.Form, cmd, _ = m.Form.Update(msg)
		return m, cmd
	}
	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit commits the form and loads page 1
func (m *Model) submit() tea.Cmd {
	if m.Form.HasInvalid() {
		m.StatusMsg = "Prices must be numbers"
		m.StatusIsErr = true
		return ClearStatusCmd(3 * time.Second)
	}

	q := m.Search.Submit()
	m.Form.SetValues(m.Search.Criteria())
	m.Grid.SetHeader(m.Search.Committed().Summary())
	m.focusGrid()
	return FetchPageCmd(m.Searcher, q)
}

// reset clears every criterion and reloads page 1
func (m *Model) reset() tea.Cmd {
	q := m.Search.Reset()
	m.Form.SetValues(m.Search.Criteria())
	m.Grid.SetHeader(m.Search.Committed().Summary())
	return FetchPageCmd(m.Searcher, q)
}

// retry reloads the current page with the committed criteria
func (m *Model) retry() tea.Cmd {
	return FetchPageCmd(m.Searcher, m.Search.LoadPage())
}

func (m *Model) nextPage() tea.Cmd {
	q, ok := m.Search.NextPage()
	if !ok {
		return nil
	}
	return FetchPageCmd(m.Searcher, q)
}

func (m *Model) prevPage() tea.Cmd {
	q, ok := m.Search.PrevPage()
	if !ok {
		return nil
	}
	return FetchPageCmd(m.Searcher, q)
}

// openSelected opens the product under the grid cursor
func (m *Model) openSelected() tea.Cmd {
	p, ok := m.Grid.SelectedProduct()
	if !ok || m.Opener == nil {
		return nil
	}
	return OpenProductCmd(m.Opener, p)
}

// editCriteria pushes the focused form field into the search view
func (m *Model) editCriteria() {
	field := m.Form.FocusedField()
	err := m.Search.UpdateCriteria(field, m.Form.Value(field))
	m.Form.SetInvalid(field, err != nil)
}

func (m *Model) focusForm() tea.Cmd {
	m.Focus = PaneForm
	m.Grid.SetFocused(false)
	return m.Form.Focus()
}

func (m *Model) focusGrid() {
	m.Focus = PaneGrid
	m.Form.Blur()
	m.Grid.SetFocused(true)
	m.updateInspector()
}

// updateHeader shows the committed criteria and the size of the loaded page
func (m *Model) updateHeader() {
	summary := m.Search.Committed().Summary()
	if m.Search.Loaded() {
		n := len(m.Search.Results())
		noun := "results"
		if n == 1 {
			noun = "result"
		}
		summary = fmt.Sprintf("%s · %d %s", summary, n, noun)
	}
	m.Grid.SetHeader(summary)
}

// updateInspector syncs the inspector with the grid selection
func (m *Model) updateInspector() {
	if p, ok := m.Grid.SelectedProduct(); ok {
		m.Inspector.SetProduct(&p)
		return
	}
	m.Inspector.SetProduct(nil)
}
