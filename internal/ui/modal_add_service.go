package ui

import (
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	addServiceTitle = "Duration time of the service"
	submitLabel     = "Add Service"

	fieldDuration = "duration"
	fieldName     = "name"
	fieldPrice    = "price"
	fieldSubmit   = "submit"
)

type addServiceKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (k addServiceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}

func (k addServiceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var addServiceKeys = addServiceKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// AddServiceModal collects a duration, a name and a price for a new service.
// The submit control is not connected to anything yet.
type AddServiceModal struct {
	Duration *DurationSelect
	Name     textinput.Model
	Price    textinput.Model
	focus    *FocusRing
	help     help.Model
	logger   *log.Logger
}

// Ensure AddServiceModal implements View.
var _ View = (*AddServiceModal)(nil)

// NewAddServiceModal creates the dialog offering durations in order.
// A nil logger discards output.
func NewAddServiceModal(durations []string, logger *log.Logger) (*AddServiceModal, error) {
	sel, err := NewDurationSelect(durations)
	if err != nil {
		return nil, err
	}
	name := textinput.New()
	name.Placeholder = "Name of the service"
	name.Width = 32
	price := textinput.New()
	price.Placeholder = "price"
	price.Width = 32

	m := &AddServiceModal{
		Duration: sel,
		Name:     name,
		Price:    price,
		focus:    NewFocusRing(fieldDuration, fieldName, fieldPrice, fieldSubmit),
		help:     newHelpModel(),
		logger:   logger,
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	m.focus.OnChange = func(_, to string) { m.applyFocus(to) }
	m.applyFocus(m.focus.Current())
	return m, nil
}

// Focused returns the id of the focused control.
func (m *AddServiceModal) Focused() string { return m.focus.Current() }

func (m *AddServiceModal) applyFocus(id string) {
	m.Duration.Blur()
	m.Name.Blur()
	m.Price.Blur()
	switch id {
	case fieldDuration:
		m.Duration.Focus()
	case fieldName:
		m.Name.Focus()
	case fieldPrice:
		m.Price.Focus()
	}
}

// submit is intentionally inert: no handler is defined for new services.
func (m *AddServiceModal) submit() tea.Cmd {
	duration, _ := m.Duration.Value()
	m.logger.Printf("add service: submit has no handler (duration=%q name=%q price=%q)",
		duration, strings.TrimSpace(m.Name.Value()), strings.TrimSpace(m.Price.Value()))
	return nil
}

// Init implements View.
func (m *AddServiceModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddServiceModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}
	switch {
	case key.Matches(km, addServiceKeys.Cancel):
		if m.Duration.Expanded() {
			m.Duration.Collapse()
			return m, nil
		}
		return m, func() tea.Msg { return DismissModalMsg{} }
	case key.Matches(km, addServiceKeys.Next):
		m.focus.Next()
		return m, nil
	case key.Matches(km, addServiceKeys.Prev):
		m.focus.Prev()
		return m, nil
	case key.Matches(km, addServiceKeys.Submit):
		switch m.focus.Current() {
		case fieldSubmit:
			return m, m.submit()
		case fieldName, fieldPrice:
			m.focus.Next()
			return m, nil
		}
	}
	return m, m.updateFocused(msg)
}

func (m *AddServiceModal) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus.Current() {
	case fieldDuration:
		_, cmd = m.Duration.Update(msg)
	case fieldName:
		m.Name, cmd = m.Name.Update(msg)
	case fieldPrice:
		m.Price, cmd = m.Price.Update(msg)
	}
	return cmd
}

// View implements View.
func (m *AddServiceModal) View() string {
	field := func(id string, content string) string {
		if m.focus.Current() == id {
			return Styles.FieldFocused.Render(content)
		}
		return Styles.Field.Render(content)
	}
	button := Styles.Button.Render(submitLabel)
	if m.focus.Current() == fieldSubmit {
		button = Styles.ButtonFocus.Render(submitLabel)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(addServiceTitle),
		"",
		m.Duration.View(),
		field(fieldName, m.Name.View()),
		field(fieldPrice, m.Price.View()),
		"",
		button,
		"",
		m.help.ShortHelpView(addServiceKeys.ShortHelp()),
	)
	return Styles.Box.Render(body)
}
