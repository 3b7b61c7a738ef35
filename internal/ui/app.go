package ui

import (
	"context"
	"io"
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"signupdesk/internal/trace"
)

// AppOptions configures the root model.
type AppOptions struct {
	Layout    Layout
	NoAnimate bool     // keep the sidebar wide and labels visible
	Durations []string // empty means DefaultServiceDurations
	Logger    *log.Logger
	Recorder  *trace.Recorder
}

// navButton describes one sidebar entry.
type navButton struct {
	label string
	icon  string
}

var navButtons = []navButton{
	{"Dashboard", "⌂"},
	{"Services", "✚"},
	{"Schedule", "◷"},
	{"Settings", "⚙"},
}

// AppModel is the root model: a sidebar, the services page, and a stack of
// modals drawn above them.
type AppModel struct {
	Provider   *SidebarProvider
	Sidebar    *SidebarBody
	Page       *ServicesPage
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Durations  []string

	width    int
	height   int
	logger   *log.Logger
	recorder *trace.Recorder
}

// NewAppModel creates the root application model.
func NewAppModel(opts AppOptions) (*AppModel, error) {
	durations := opts.Durations
	if len(durations) == 0 {
		durations = DefaultServiceDurations
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	a := &AppModel{
		Page:      NewServicesPage(),
		Durations: durations,
		logger:    logger,
		recorder:  opts.Recorder,
	}

	a.Provider = NewSidebarProvider(
		WithAnimate(!opts.NoAnimate),
		WithOnChange(a.visibilityChanged),
	)

	children := make([]View, 0, len(navButtons))
	for _, nb := range navButtons {
		var btn *SidebarButton
		btn, err := NewSidebarButton(a.Provider, nb.label, nb.icon, WithOnClick(func() tea.Msg {
			return NavigateMsg{Section: btn.DataValue()}
		}))
		if err != nil {
			return nil, err
		}
		children = append(children, btn)
	}
	body, err := NewSidebarBody(a.Provider, opts.Layout, children...)
	if err != nil {
		return nil, err
	}
	a.Sidebar = body

	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("SPC b", func() tea.Msg { return ToggleSidebarMsg{} }, "Toggle sidebar")
	reg.Bind("SPC s a", func() tea.Msg { return ShowAddServiceMsg{} }, "Add service")
	reg.Group("s", "Service")
	a.KeyHandler = NewKeyHandler(reg)

	logger.Printf("app: layout=%s animate=%v controlled=%v durations=%d sidebar=%s",
		opts.Layout, a.Provider.Animate(), a.Provider.Controlled(), len(durations), a.Provider.ID())
	return a, nil
}

func (a *AppModel) visibilityChanged(open bool) {
	a.logger.Printf("sidebar %s: open=%v", a.Provider.ID(), open)
	a.recorder.Record(context.Background(), "sidebar.visibility", map[string]string{
		"sidebar.id":   a.Provider.ID(),
		"sidebar.open": strconv.FormatBool(open),
	})
}

// Ensure appModelAdapter implements tea.Model.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Sidebar.Init(), a.Page.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Sidebar.Update(msg)
		return a, cmd
	case frameMsg:
		_, cmd := a.Sidebar.Update(msg)
		return a, cmd
	case ShowAddServiceMsg:
		return a, a.showAddService()
	case DismissModalMsg:
		if top, ok := a.Overlays.Pop(); ok {
			a.logger.Printf("modal %s: dismissed", top.Name)
			a.recorder.Record(context.Background(), "modal.dismiss", map[string]string{"modal": top.Name})
		}
		return a, nil
	case ToggleSidebarMsg:
		a.Provider.Toggle()
		_, cmd := a.Sidebar.Update(msg)
		return a, cmd
	case NavigateMsg:
		a.logger.Printf("sidebar: navigate to %s", msg.Section)
		a.Page.Update(msg)
		return a, nil
	}

	if a.Overlays.Len() > 0 {
		if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if _, ok := msg.(tea.MouseMsg); ok {
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	_, cmd := a.Sidebar.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) showAddService() tea.Cmd {
	modal, err := NewAddServiceModal(a.Durations, a.logger)
	if err != nil {
		a.logger.Printf("modal add-service: %v", err)
		return nil
	}
	a.Overlays.Push(Overlay{Name: "add-service", View: modal})
	a.logger.Printf("modal add-service: opened")
	a.recorder.Record(context.Background(), "modal.open", map[string]string{"modal": "add-service"})
	return modal.Init()
}

// handleMouse sends the event to the sidebar, then to the page in page
// coordinates unless the sidebar covers the window.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	coveredBefore := a.Sidebar.CoversWindow()
	_, sideCmd := a.Sidebar.Update(msg)
	if coveredBefore {
		return sideCmd
	}
	ox, oy := a.pageOrigin()
	local := msg
	local.X -= ox
	local.Y -= oy
	if local.X < 0 || local.Y < 0 {
		return sideCmd
	}
	_, pageCmd := a.Page.Update(local)
	return tea.Batch(sideCmd, pageCmd)
}

// pageOrigin is where the page's top-left cell sits on screen.
func (a *AppModel) pageOrigin() (x, y int) {
	if a.Sidebar.Layout == LayoutMobile {
		return pagePadding, a.Sidebar.Mobile.HeaderHeight() + pagePadding
	}
	return a.Sidebar.Desktop.Width() + pagePadding, pagePadding
}

const pagePadding = 1

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	if a.Sidebar.CoversWindow() {
		base = a.Sidebar.View()
	} else {
		page := lipgloss.NewStyle().Padding(pagePadding).Render(a.Page.View())
		if a.Sidebar.Layout == LayoutMobile {
			base = lipgloss.JoinVertical(lipgloss.Left, a.Sidebar.View(), page)
		} else {
			base = lipgloss.JoinHorizontal(lipgloss.Top, a.Sidebar.View(), page)
		}
	}
	base = a.Overlays.Render(base, a.width, a.height)
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	}
	return base
}
