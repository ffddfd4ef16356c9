package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
	"github.com/mmcdole/shopr/internal/tui/styles"
)

// FormAction tells the parent what a key press in the form asked for
type FormAction int

const (
	FormNone    FormAction = iota
	FormEdited             // the focused field's text changed
	FormSubmit             // run the search
	FormDismiss            // leave the form
)

// maxSuggestions caps the option hints shown under a field
const maxSuggestions = 4

// invalidMarker is appended to a field whose text is not a usable price
const invalidMarker = " not a number"

// FormHeight is the rendered height: one row per field, a hint row and the border
var FormHeight = len(domain.Fields) + 1 + BorderHeight

// SearchForm is the criteria entry pane: one text input per search field
type SearchForm struct {
	inputs  []textinput.Model // indexed like domain.Fields
	focus   int
	focused bool
	width   int

	options map[domain.Field][]string
	invalid map[domain.Field]bool
}

// NewSearchForm creates a form. options holds known values per free-text field.
func NewSearchForm(options map[domain.Field][]string) SearchForm {
	inputs := make([]textinput.Model, len(domain.Fields))
	for i, field := range domain.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		ti.CharLimit = 80

		switch field {
		case domain.FieldText:
			ti.Placeholder = "Search products..."
		case domain.FieldCategory:
			ti.Placeholder = "All categories"
		case domain.FieldMinPrice:
			ti.Placeholder = "no minimum"
			ti.CharLimit = 12
		case domain.FieldMaxPrice:
			ti.Placeholder = "no maximum"
			ti.CharLimit = 12
		case domain.FieldAvailability:
			ti.Placeholder = "Any availability"
		}
		inputs[i] = ti
	}

	if options == nil {
		options = make(map[domain.Field][]string)
	}

	return SearchForm{
		inputs:  inputs,
		options: options,
		invalid: make(map[domain.Field]bool),
	}
}

// SetWidth sets the rendered width of the form
func (f *SearchForm) SetWidth(width int) {
	f.width = width
	// Leave room for the cursor and the invalid marker so rows never wrap
	inputWidth := width - 2*BorderWidth - lipgloss.Width(styles.LabelStyle.Render("")) - len(invalidMarker) - 1
	if inputWidth < 8 {
		inputWidth = 8
	}
	for i := range f.inputs {
		f.inputs[i].Width = inputWidth
	}
}

// SetValues fills the inputs from criteria
func (f *SearchForm) SetValues(c domain.SearchCriteria) {
	for i, field := range domain.Fields {
		f.inputs[i].SetValue(c.Value(field))
	}
	f.invalid = make(map[domain.Field]bool)
}

// Value returns the raw text of a field
func (f SearchForm) Value(field domain.Field) string {
	return f.inputs[f.indexOf(field)].Value()
}

// FocusedField returns the field with the cursor
func (f SearchForm) FocusedField() domain.Field {
	return domain.Fields[f.focus]
}

// SetInvalid marks a field as holding text that could not be used
func (f *SearchForm) SetInvalid(field domain.Field, invalid bool) {
	f.invalid[field] = invalid
}

// HasInvalid reports whether any field is marked invalid
func (f SearchForm) HasInvalid() bool {
	for _, bad := range f.invalid {
		if bad {
			return true
		}
	}
	return false
}

// Focus gives the form keyboard focus
func (f *SearchForm) Focus() tea.Cmd {
	f.focused = true
	return f.inputs[f.focus].Focus()
}

// Blur removes keyboard focus
func (f *SearchForm) Blur() {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsFocused returns the focus state
func (f SearchForm) IsFocused() bool {
	return f.focused
}

func (f SearchForm) indexOf(field domain.Field) int {
	for i, fd := range domain.Fields {
		if fd == field {
			return i
		}
	}
	return 0
}

// moveFocus shifts the cursor to another field, wrapping around
func (f *SearchForm) moveFocus(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// Update handles key input, returning what the parent should do next
func (f SearchForm) Update(msg tea.Msg) (SearchForm, tea.Cmd, FormAction) {
	if !f.focused {
		return f, nil, FormNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FormKeys.Submit):
			return f, nil, FormSubmit
		case key.Matches(keyMsg, FormKeys.Dismiss):
			return f, nil, FormDismiss
		case key.Matches(keyMsg, FormKeys.Next):
			return f, f.moveFocus(1), FormNone
		case key.Matches(keyMsg, FormKeys.Prev):
			return f, f.moveFocus(-1), FormNone
		}
	}

	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.inputs[f.focus].Value() != before {
		return f, cmd, FormEdited
	}
	return f, cmd, FormNone
}

// View renders the form
func (f SearchForm) View() string {
	var rows []string
	for i, field := range domain.Fields {
		label := styles.LabelStyle
		if f.focused && i == f.focus {
			label = styles.FocusedLabelStyle
		}

		row := label.Render(field.String()) + f.inputs[i].View()
		if f.invalid[field] {
			row += styles.InvalidStyle.Render(invalidMarker)
		}
		rows = append(rows, row)
	}

	// Always reserve the hint line so the form height is stable
	rows = append(rows, f.suggestionLine())

	style := styles.InactiveBorder
	if f.focused {
		style = styles.ActiveBorder
	}
	frameW, _ := style.GetFrameSize()

	return style.
		Width(f.width - frameW).
		Render(strings.Join(rows, "\n"))
}

// suggestionLine lists known options for the focused free-text field
func (f SearchForm) suggestionLine() string {
	if !f.focused {
		return ""
	}
	field := f.FocusedField()
	opts := f.options[field]
	if len(opts) == 0 {
		return ""
	}

	suggestions := search.Suggest(f.inputs[f.focus].Value(), opts)
	if len(suggestions) == 0 {
		return ""
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	pad := lipgloss.Width(styles.LabelStyle.Render(""))
	return strings.Repeat(" ", pad) + styles.SuggestionStyle.Render(strings.Join(suggestions, " · "))
}
