package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column widths in cells, including the right border.
const (
	SidebarWideWidth   = 24
	SidebarNarrowWidth = 7
)

// desktopPaddingTop is the number of rows above the first child.
const desktopPaddingTop = 1

// DesktopSidebar is a fixed left column whose width follows the open flag.
// Moving the mouse into the column opens it; moving out closes it.
type DesktopSidebar struct {
	id       string
	provider *SidebarProvider
	children []View
	height   int
	hovered  bool
	width    widthSpring
	ticking  bool
}

// Ensure DesktopSidebar implements View.
var _ View = (*DesktopSidebar)(nil)

// NewDesktopSidebar creates the desktop column over p.
func NewDesktopSidebar(p *SidebarProvider, children ...View) (*DesktopSidebar, error) {
	p, err := UseSidebar(p)
	if err != nil {
		return nil, err
	}
	d := &DesktopSidebar{
		id:       p.ID() + "/desktop",
		provider: p,
		children: children,
	}
	d.width = newWidthSpring(d.TargetWidth())
	return d, nil
}

// TargetWidth is the width the column settles at for the current state.
func (d *DesktopSidebar) TargetWidth() int {
	if !d.provider.Animate() || d.provider.Open() {
		return SidebarWideWidth
	}
	return SidebarNarrowWidth
}

// Width is the width currently rendered, which lags TargetWidth while animating.
func (d *DesktopSidebar) Width() int { return d.width.width() }

// Bounds returns the region the column occupies.
func (d *DesktopSidebar) Bounds() Bounds {
	return Bounds{X: 0, Y: 0, W: d.Width(), H: d.height}
}

// PointerEnter opens the sidebar.
func (d *DesktopSidebar) PointerEnter() tea.Cmd {
	d.hovered = true
	d.provider.SetOpen(true)
	return d.sync()
}

// PointerLeave closes the sidebar.
func (d *DesktopSidebar) PointerLeave() tea.Cmd {
	d.hovered = false
	d.provider.SetOpen(false)
	return d.sync()
}

// sync retargets the width after the open flag may have changed and starts
// the frame loop if needed.
func (d *DesktopSidebar) sync() tea.Cmd {
	target := d.TargetWidth()
	if target == d.width.targetWidth() {
		return nil
	}
	if !d.provider.Animate() {
		d.width.jump(target)
		return nil
	}
	d.width.setTarget(target)
	if d.ticking {
		return nil
	}
	d.ticking = true
	return frameCmd(d.id)
}

// Init implements View.
func (d *DesktopSidebar) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(d.children))
	for _, c := range d.children {
		cmds = append(cmds, c.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements View.
func (d *DesktopSidebar) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.height = msg.Height
	case frameMsg:
		if msg.id != d.id {
			break
		}
		d.width.step()
		if d.width.settled() {
			d.ticking = false
			return d, nil
		}
		return d, frameCmd(d.id)
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	}
	return d, d.sync()
}

func (d *DesktopSidebar) handleMouse(msg tea.MouseMsg) tea.Cmd {
	inside := d.Bounds().Contains(msg.X, msg.Y)
	var cmds []tea.Cmd
	switch {
	case inside && !d.hovered:
		cmds = append(cmds, d.PointerEnter())
	case !inside && d.hovered:
		cmds = append(cmds, d.PointerLeave())
	}
	if inside && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		cmds = append(cmds, clickChildAt(d.children, msg.Y-desktopPaddingTop))
	}
	cmds = append(cmds, d.sync())
	return tea.Batch(cmds...)
}

// View implements View.
func (d *DesktopSidebar) View() string {
	inner := max(d.Width()-1-Styles.Sidebar.GetHorizontalPadding(), 1)
	rows := make([]string, 0, len(d.children))
	for _, c := range d.children {
		rows = append(rows, fitView(c, inner))
	}
	style := Styles.Sidebar.Width(max(d.Width()-1, 1)).MaxWidth(d.Width())
	if d.height > 0 {
		style = style.Height(d.height)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
