package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in      string
		want    Layout
		wantErr bool
	}{
		{"desktop", LayoutDesktop, false},
		{"", LayoutDesktop, false},
		{"mobile", LayoutMobile, false},
		{"tablet", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLayout(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestSidebarBody_RenderersShareOneFlag(t *testing.T) {
	p := NewSidebarProvider()
	body, err := NewSidebarBody(p, LayoutDesktop)
	require.NoError(t, err)
	body.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Same(t, body.Desktop, body.Active())
	body.Desktop.PointerEnter()
	assert.True(t, body.Mobile.OverlayPresent(), "mobile renderer reads the same flag")

	body.Layout = LayoutMobile
	assert.Same(t, body.Mobile, body.Active())
	assert.True(t, body.CoversWindow())
	body.Mobile.Close()
	assert.False(t, p.Open())
}

func TestSidebarBody_InputOnlyReachesActiveRenderer(t *testing.T) {
	p := NewSidebarProvider()
	body, err := NewSidebarBody(p, LayoutMobile)
	require.NoError(t, err)
	body.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	// Motion over where the desktop column would be does not hover it.
	body.Update(mouseMsg(tea.MouseActionMotion, 1, 5))
	assert.False(t, p.Open())
	assert.False(t, body.Desktop.hovered)
}
