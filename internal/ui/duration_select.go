package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// DurationPlaceholder is shown before a duration is chosen. It is not an option.
const DurationPlaceholder = "Choose service duration time"

// ErrNoDurations is returned when a duration selector has nothing to offer.
var ErrNoDurations = errors.New("service dialog: duration list is empty")

// DefaultServiceDurations are the lengths offered when none are configured.
var DefaultServiceDurations = []string{
	"15 min",
	"30 min",
	"45 min",
	"1 hour",
	"1.5 hours",
	"2 hours",
}

const durationListWidth = 32

type durationItem string

func (d durationItem) FilterValue() string { return string(d) }
func (d durationItem) Title() string       { return string(d) }
func (d durationItem) Description() string { return "" }

type selectKeyMap struct {
	Open   key.Binding
	Choose key.Binding
	Close  key.Binding
}

var selectKeys = selectKeyMap{
	Open:   key.NewBinding(key.WithKeys("enter", " ", "down"), key.WithHelp("enter", "open")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

// DurationSelect is a drop-down over a fixed, ordered list of durations.
// Nothing is selected until the user picks an option. The placeholder is the
// list title, so the cursor can only rest on real options.
type DurationSelect struct {
	list     list.Model
	options  []string
	selected int // -1 while the placeholder is displayed
	expanded bool
	focused  bool
}

// Ensure DurationSelect implements View.
var _ View = (*DurationSelect)(nil)

// NewDurationSelect creates a selector over options, which must be non-empty.
func NewDurationSelect(options []string) (*DurationSelect, error) {
	if len(options) == 0 {
		return nil, ErrNoDurations
	}
	items := make([]list.Item, len(options))
	opts := make([]string, len(options))
	for i, o := range options {
		items[i] = durationItem(o)
		opts[i] = o
	}
	// Title bar is two rows: the placeholder and a gap.
	l := list.New(items, NewCompactListDelegate(), durationListWidth, len(items)+2)
	l.Title = DurationPlaceholder
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Muted
	return &DurationSelect{list: l, options: opts, selected: -1}, nil
}

// Value returns the chosen duration, if any.
func (s *DurationSelect) Value() (string, bool) {
	if s.selected < 0 {
		return "", false
	}
	return s.options[s.selected], true
}

// Display is the text shown on the closed selector.
func (s *DurationSelect) Display() string {
	if v, ok := s.Value(); ok {
		return v
	}
	return DurationPlaceholder
}

// Expanded reports whether the option list is open.
func (s *DurationSelect) Expanded() bool { return s.expanded }

// Focus and Blur mirror textinput so the dialog can treat fields alike.
func (s *DurationSelect) Focus() { s.focused = true }

func (s *DurationSelect) Blur() {
	s.focused = false
	s.expanded = false
}

// Collapse closes the list without changing the choice.
func (s *DurationSelect) Collapse() { s.expanded = false }

// expand opens the list with the cursor on the current choice.
func (s *DurationSelect) expand() {
	s.expanded = true
	s.list.Select(max(s.selected, 0))
}

func (s *DurationSelect) choose() {
	s.selected = s.list.Index()
	s.expanded = false
}

// Init implements View.
func (s *DurationSelect) Init() tea.Cmd { return nil }

// Update implements View.
func (s *DurationSelect) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}
	if !s.expanded {
		if key.Matches(km, selectKeys.Open) {
			s.expand()
		}
		return s, nil
	}
	switch {
	case key.Matches(km, selectKeys.Choose):
		s.choose()
		return s, nil
	case key.Matches(km, selectKeys.Close):
		s.Collapse()
		return s, nil
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// View implements View.
func (s *DurationSelect) View() string {
	style := Styles.Field
	if s.focused {
		style = Styles.FieldFocused
	}
	if s.expanded {
		return style.Render(s.list.View())
	}
	display := Styles.Normal.Render(s.Display())
	if s.selected < 0 {
		display = Styles.Muted.Render(s.Display())
	}
	return style.Render(display + " ▾")
}
