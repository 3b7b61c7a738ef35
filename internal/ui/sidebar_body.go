package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Layout selects which sidebar renderer is shown.
type Layout int

const (
	LayoutDesktop Layout = iota
	LayoutMobile
)

func (l Layout) String() string {
	switch l {
	case LayoutDesktop:
		return "desktop"
	case LayoutMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// ParseLayout parses "desktop" or "mobile".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "desktop", "":
		return LayoutDesktop, nil
	case "mobile":
		return LayoutMobile, nil
	}
	return 0, fmt.Errorf("unknown layout %q (want desktop or mobile)", s)
}

// SidebarBody builds both renderers over the same children and shows the one
// chosen by Layout. Both share the provider's open flag.
type SidebarBody struct {
	Layout  Layout
	Desktop *DesktopSidebar
	Mobile  *MobileSidebar
}

// Ensure SidebarBody implements View.
var _ View = (*SidebarBody)(nil)

// NewSidebarBody creates the desktop and mobile renderers.
func NewSidebarBody(p *SidebarProvider, layout Layout, children ...View) (*SidebarBody, error) {
	desktop, err := NewDesktopSidebar(p, children...)
	if err != nil {
		return nil, err
	}
	mobile, err := NewMobileSidebar(p, children...)
	if err != nil {
		return nil, err
	}
	return &SidebarBody{Layout: layout, Desktop: desktop, Mobile: mobile}, nil
}

// Active returns the renderer for the current layout.
func (b *SidebarBody) Active() View {
	if b.Layout == LayoutMobile {
		return b.Mobile
	}
	return b.Desktop
}

// CoversWindow reports whether the sidebar currently owns the whole window
// (the mobile overlay).
func (b *SidebarBody) CoversWindow() bool {
	return b.Layout == LayoutMobile && b.Mobile.OverlayPresent()
}

// Init implements View.
func (b *SidebarBody) Init() tea.Cmd {
	return b.Active().Init()
}

// Update implements View. Input goes to the active renderer; window sizes and
// animation frames go to both so either can take over.
func (b *SidebarBody) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg.(type) {
	case tea.WindowSizeMsg, frameMsg:
		_, c1 := b.Desktop.Update(msg)
		_, c2 := b.Mobile.Update(msg)
		return b, tea.Batch(c1, c2)
	}
	_, cmd := b.Active().Update(msg)
	return b, cmd
}

// View implements View.
func (b *SidebarBody) View() string {
	return b.Active().View()
}
