package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"signupdesk/internal/ui/textutil"
)

// DataValueAttr is the attribute carrying a button's lower-cased label.
const DataValueAttr = "data-value"

// ButtonOption passes extra attributes or handlers through to a SidebarButton.
type ButtonOption func(*SidebarButton)

// WithButtonAttr sets an attribute on the button. An explicit data-value
// overrides the one derived from the label.
func WithButtonAttr(name, value string) ButtonOption {
	return func(b *SidebarButton) {
		if b.attrs == nil {
			b.attrs = make(map[string]string)
		}
		b.attrs[name] = value
	}
}

// WithOnClick sets the message produced when the button is pressed.
func WithOnClick(fn func() tea.Msg) ButtonOption {
	return func(b *SidebarButton) {
		b.onClick = fn
	}
}

// SidebarButton is an icon plus a text label. When the provider animates, the
// label is only shown while the sidebar is open.
type SidebarButton struct {
	Label string
	Icon  string

	provider *SidebarProvider
	attrs    map[string]string
	onClick  func() tea.Msg
}

// Ensure SidebarButton implements View and Clickable.
var (
	_ View      = (*SidebarButton)(nil)
	_ Clickable = (*SidebarButton)(nil)
)

// NewSidebarButton creates a button reading the open flag from p.
func NewSidebarButton(p *SidebarProvider, label, icon string, opts ...ButtonOption) (*SidebarButton, error) {
	p, err := UseSidebar(p)
	if err != nil {
		return nil, err
	}
	b := &SidebarButton{Label: label, Icon: icon, provider: p}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// DataValue returns the identifier used to address the button from outside.
func (b *SidebarButton) DataValue() string {
	v, _ := b.Attr(DataValueAttr)
	return v
}

// Attr returns the named attribute.
func (b *SidebarButton) Attr(name string) (string, bool) {
	if v, ok := b.attrs[name]; ok {
		return v, true
	}
	if name == DataValueAttr {
		return strings.ToLower(b.Label), true
	}
	return "", false
}

// LabelVisible reports whether the label is rendered.
func (b *SidebarButton) LabelVisible() bool {
	return !b.provider.Animate() || b.provider.Open()
}

// Click implements Clickable.
func (b *SidebarButton) Click() tea.Cmd {
	if b.onClick == nil {
		return nil
	}
	return b.onClick
}

// Init implements View.
func (b *SidebarButton) Init() tea.Cmd { return nil }

// Update implements View.
func (b *SidebarButton) Update(tea.Msg) (View, tea.Cmd) { return b, nil }

// View implements View.
func (b *SidebarButton) View() string {
	s := Styles.SidebarIcon.Render(b.Icon)
	if b.LabelVisible() {
		s += " " + Styles.SidebarLabel.Render(b.Label)
	}
	return s
}

// Fit renders the button within width columns, clipping the label.
func (b *SidebarButton) Fit(width int) string {
	s := Styles.SidebarIcon.Render(b.Icon)
	room := width - textutil.Width(b.Icon) - 1
	if b.LabelVisible() && room > 0 {
		s += " " + Styles.SidebarLabel.Render(textutil.Clip(b.Label, room))
	}
	return s
}
