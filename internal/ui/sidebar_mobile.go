package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	menuIcon  = "☰"
	closeIcon = "✕"

	// Width of the menu icon hit area, in cells.
	iconHitWidth = 4

	// Rows above the first child inside the overlay: padding, close icon, gap.
	mobileOverlayChildTop = 3
)

// MobileSidebar is a one-row header with a menu icon. While open, it renders
// a full-window overlay with a close icon and the children. The overlay slides
// in and out using OverlayTransitionDuration.
type MobileSidebar struct {
	id       string
	provider *SidebarProvider
	children []View
	width    int
	height   int
	tween    Tween
	ticking  bool
}

// Ensure MobileSidebar implements View.
var _ View = (*MobileSidebar)(nil)

// NewMobileSidebar creates the mobile header/overlay over p.
func NewMobileSidebar(p *SidebarProvider, children ...View) (*MobileSidebar, error) {
	p, err := UseSidebar(p)
	if err != nil {
		return nil, err
	}
	return &MobileSidebar{
		id:       p.ID() + "/mobile",
		provider: p,
		children: children,
		tween:    NewOverlayTween(p.Open()),
	}, nil
}

// OverlayPresent reports whether the overlay is mounted: while open, and
// while its exit transition runs.
func (m *MobileSidebar) OverlayPresent() bool {
	return m.provider.Open() || m.tween.Progress() > 0
}

// HeaderHeight is the number of rows the header bar uses.
func (m *MobileSidebar) HeaderHeight() int { return 1 }

// ToggleMenu flips the open flag (menu icon tap).
func (m *MobileSidebar) ToggleMenu() tea.Cmd {
	m.provider.Toggle()
	return m.sync()
}

// Close closes the sidebar (close icon tap).
func (m *MobileSidebar) Close() tea.Cmd {
	m.provider.SetOpen(false)
	return m.sync()
}

func (m *MobileSidebar) sync() tea.Cmd {
	open := m.provider.Open()
	if open == m.tween.Opening() {
		return nil
	}
	m.tween.SetTarget(open)
	if m.ticking {
		return nil
	}
	m.ticking = true
	return frameCmd(m.id)
}

func (m *MobileSidebar) menuIconBounds() Bounds {
	return Bounds{X: max(m.width-iconHitWidth, 0), Y: 0, W: iconHitWidth, H: 1}
}

func (m *MobileSidebar) closeIconBounds() Bounds {
	return Bounds{X: max(m.width-iconHitWidth-2, 0), Y: 1, W: iconHitWidth + 2, H: 1}
}

// Init implements View.
func (m *MobileSidebar) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.children))
	for _, c := range m.children {
		cmds = append(cmds, c.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements View.
func (m *MobileSidebar) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		if msg.id != m.id {
			break
		}
		m.tween.Advance(frameInterval)
		if !m.tween.Active() {
			m.ticking = false
			return m, nil
		}
		return m, frameCmd(m.id)
	case tea.KeyMsg:
		if msg.String() == "esc" && m.provider.Open() {
			return m, m.Close()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.handlePress(msg.X, msg.Y)
		}
	}
	return m, m.sync()
}

func (m *MobileSidebar) handlePress(x, y int) tea.Cmd {
	if !m.OverlayPresent() {
		if m.menuIconBounds().Contains(x, y) {
			return m.ToggleMenu()
		}
		return m.sync()
	}
	if m.closeIconBounds().Contains(x, y) {
		return m.Close()
	}
	if cmd := clickChildAt(m.children, y-mobileOverlayChildTop); cmd != nil {
		return tea.Batch(cmd, m.sync())
	}
	return m.sync()
}

// View implements View.
func (m *MobileSidebar) View() string {
	if m.OverlayPresent() {
		return m.overlayView()
	}
	return m.headerView()
}

func (m *MobileSidebar) headerView() string {
	w := max(m.width, lipgloss.Width(menuIcon)+2)
	icon := Styles.SidebarIcon.Render(menuIcon)
	pad := max(w-lipgloss.Width(icon)-2, 0)
	return Styles.SidebarHeader.Width(w).Render(strings.Repeat(" ", pad) + icon)
}

func (m *MobileSidebar) overlayView() string {
	w := max(m.width, SidebarWideWidth)
	inner := max(w-4, 1)
	closeRow := lipgloss.PlaceHorizontal(inner, lipgloss.Right, Styles.SidebarIcon.Render(closeIcon)+" ")

	rows := []string{closeRow, ""}
	for _, c := range m.children {
		rows = append(rows, fitView(c, inner))
	}
	style := Styles.SidebarPanel.Width(w)
	if m.height > 0 {
		style = style.Height(m.height)
	}
	eased := m.tween.Value()
	if eased < 0.5 {
		style = style.Faint(true)
	}
	// Slide in from the left: only the revealed share of the panel is drawn.
	visible := int(eased * float64(w))
	if visible < w {
		style = style.MaxWidth(max(visible, 1))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
