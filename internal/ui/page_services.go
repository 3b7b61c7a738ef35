package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const triggerLabel = "[+] Add service"

// triggerRow is the row of the trigger inside the page.
const triggerRow = 2

// AddServiceTrigger is the control that opens the add-service dialog.
type AddServiceTrigger struct{}

// Ensure AddServiceTrigger implements View and Clickable.
var (
	_ View      = AddServiceTrigger{}
	_ Clickable = AddServiceTrigger{}
)

// Click implements Clickable.
func (AddServiceTrigger) Click() tea.Cmd {
	return func() tea.Msg { return ShowAddServiceMsg{} }
}

func (AddServiceTrigger) Init() tea.Cmd                  { return nil }
func (t AddServiceTrigger) Update(tea.Msg) (View, tea.Cmd) { return t, nil }

func (AddServiceTrigger) View() string {
	return Styles.ButtonFocus.Render(triggerLabel)
}

// ServicesPage is the signup step where services are added.
type ServicesPage struct {
	Section string // last section picked in the sidebar
	Trigger AddServiceTrigger
}

// Ensure ServicesPage implements View.
var _ View = (*ServicesPage)(nil)

// NewServicesPage creates the page.
func NewServicesPage() *ServicesPage {
	return &ServicesPage{Section: "services"}
}

// TriggerBounds returns where the trigger sits relative to the page origin.
func (p *ServicesPage) TriggerBounds() Bounds {
	return Bounds{X: 0, Y: triggerRow, W: lipgloss.Width(p.Trigger.View()), H: 1}
}

// Init implements View.
func (p *ServicesPage) Init() tea.Cmd { return nil }

// Update implements View.
func (p *ServicesPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case NavigateMsg:
		p.Section = msg.Section
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			p.TriggerBounds().Contains(msg.X, msg.Y) {
			return p, p.Trigger.Click()
		}
	}
	return p, nil
}

// View implements View.
func (p *ServicesPage) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Services")+"  "+Styles.Hint.Render("section: "+p.Section),
		"",
		p.Trigger.View(),
		"",
		Styles.Hint.Render("SPC s a: add service  SPC b: toggle sidebar  q: quit"),
	)
}
