package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDesktop(t *testing.T, p *SidebarProvider, children ...View) *DesktopSidebar {
	t.Helper()
	d, err := NewDesktopSidebar(p, children...)
	require.NoError(t, err)
	d.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return d
}

// settleDesktop feeds frames until the width animation stops.
func settleDesktop(t *testing.T, d *DesktopSidebar) {
	t.Helper()
	for i := 0; d.ticking; i++ {
		require.Less(t, i, 1000, "width animation never settled")
		d.Update(frameMsg{id: d.id})
	}
}

func TestDesktopSidebar_TargetWidth(t *testing.T) {
	p := NewSidebarProvider()
	d := newTestDesktop(t, p)

	assert.Equal(t, SidebarNarrowWidth, d.TargetWidth())
	assert.Equal(t, SidebarNarrowWidth, d.Width())

	p.SetOpen(true)
	assert.Equal(t, SidebarWideWidth, d.TargetWidth())
}

func TestDesktopSidebar_AlwaysWideWithoutAnimation(t *testing.T) {
	p := NewSidebarProvider(WithAnimate(false))
	d := newTestDesktop(t, p)

	for _, open := range []bool{false, true, false} {
		p.SetOpen(open)
		d.Update(nil)
		assert.Equal(t, SidebarWideWidth, d.TargetWidth(), "open=%v", open)
		assert.Equal(t, SidebarWideWidth, d.Width(), "open=%v", open)
		assert.False(t, d.ticking)
	}
}

func TestDesktopSidebar_PointerEnterLeave(t *testing.T) {
	p := NewSidebarProvider()
	d := newTestDesktop(t, p)

	d.PointerEnter()
	assert.True(t, p.Open())
	d.PointerEnter()
	assert.True(t, p.Open(), "enter while open stays open")

	d.PointerLeave()
	assert.False(t, p.Open())
	d.PointerLeave()
	assert.False(t, p.Open(), "leave while closed stays closed")
}

func TestDesktopSidebar_PointerEnterOverridesExternalClose(t *testing.T) {
	p := NewSidebarProvider()
	d := newTestDesktop(t, p)

	d.PointerEnter()
	p.SetOpen(false) // e.g. toggled from the keyboard
	d.PointerEnter()
	assert.True(t, p.Open())
}

func TestDesktopSidebar_MouseMotionDrivesHover(t *testing.T) {
	p := NewSidebarProvider()
	d := newTestDesktop(t, p)

	d.Update(mouseMsg(tea.MouseActionMotion, 2, 5))
	assert.True(t, d.hovered)
	assert.True(t, p.Open())

	settleDesktop(t, d)
	assert.Equal(t, SidebarWideWidth, d.Width())

	// Still inside the now wide column.
	d.Update(mouseMsg(tea.MouseActionMotion, SidebarWideWidth-1, 5))
	assert.True(t, p.Open())

	d.Update(mouseMsg(tea.MouseActionMotion, 60, 5))
	assert.False(t, d.hovered)
	assert.False(t, p.Open())

	settleDesktop(t, d)
	assert.Equal(t, SidebarNarrowWidth, d.Width())
}

func TestDesktopSidebar_FramesForOtherComponentsIgnored(t *testing.T) {
	p := NewSidebarProvider()
	d := newTestDesktop(t, p)

	d.PointerEnter()
	before := d.Width()
	d.Update(frameMsg{id: "someone-else"})
	assert.Equal(t, before, d.Width())
}

func TestDesktopSidebar_ClickReachesChild(t *testing.T) {
	p := NewSidebarProvider(WithAnimate(false))
	var buttons []View
	for _, label := range []string{"Dashboard", "Services"} {
		b, err := NewSidebarButton(p, label, "•", WithOnClick(func() tea.Msg {
			return NavigateMsg{Section: label}
		}))
		require.NoError(t, err)
		buttons = append(buttons, b)
	}
	d := newTestDesktop(t, p, buttons...)

	_, cmd := d.Update(mouseMsg(tea.MouseActionPress, 2, desktopPaddingTop+1))
	assert.Contains(t, collectMsgs(cmd), NavigateMsg{Section: "Services"})
}

func TestDesktopSidebar_ViewHasRenderedWidth(t *testing.T) {
	p := NewSidebarProvider(WithAnimate(false))
	b, err := NewSidebarButton(p, "Home", "⌂")
	require.NoError(t, err)
	d := newTestDesktop(t, p, b)

	view := d.View()
	assert.Contains(t, view, "Home")
}

// collectMsgs runs cmd and any batched commands, returning their messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
