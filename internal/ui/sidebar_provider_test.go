package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarProvider_SelfManagedStartsClosed(t *testing.T) {
	p := NewSidebarProvider()

	assert.False(t, p.Open())
	assert.True(t, p.Animate(), "animate defaults to on")
	assert.False(t, p.Controlled())
	assert.NotEmpty(t, p.ID())

	p.SetOpen(true)
	assert.True(t, p.Open())
	p.Toggle()
	assert.False(t, p.Open())
}

func TestSidebarProvider_ControlledMirrorsExternalPair(t *testing.T) {
	external := true
	var writes []bool
	p := NewSidebarProvider(WithControlledState(
		func() bool { return external },
		func(v bool) {
			writes = append(writes, v)
			external = v
		},
	))

	require.True(t, p.Controlled())
	assert.True(t, p.Open(), "reads come from the external value")

	external = false
	assert.False(t, p.Open(), "no shadow copy: external changes are visible at once")

	p.SetOpen(true)
	assert.Equal(t, []bool{true}, writes)
	assert.True(t, external)
}

func TestSidebarProvider_ControlledWriteIgnoredBySetter(t *testing.T) {
	// A setter that refuses writes leaves the provider reading the old value.
	p := NewSidebarProvider(WithControlledState(
		func() bool { return false },
		func(bool) {},
	))
	p.SetOpen(true)
	assert.False(t, p.Open())
}

func TestSidebarProvider_IncompletePairIsSelfManaged(t *testing.T) {
	p := NewSidebarProvider(WithControlledState(func() bool { return true }, nil))

	assert.False(t, p.Controlled())
	assert.False(t, p.Open())
}

func TestSidebarProvider_OnChangeSeesEveryWrite(t *testing.T) {
	var seen []bool
	p := NewSidebarProvider(WithOnChange(func(open bool) { seen = append(seen, open) }))

	p.SetOpen(true)
	p.SetOpen(true)
	p.Toggle()

	assert.Equal(t, []bool{true, true, false}, seen)
}

func TestUseSidebar_MissingProvider(t *testing.T) {
	_, err := UseSidebar(nil)
	require.ErrorIs(t, err, ErrNoSidebarProvider)

	_, err = NewDesktopSidebar(nil)
	assert.ErrorIs(t, err, ErrNoSidebarProvider)
	_, err = NewMobileSidebar(nil)
	assert.ErrorIs(t, err, ErrNoSidebarProvider)
	_, err = NewSidebarButton(nil, "Home", "⌂")
	assert.ErrorIs(t, err, ErrNoSidebarProvider)
	_, err = NewSidebarBody(nil, LayoutDesktop)
	assert.ErrorIs(t, err, ErrNoSidebarProvider)
}
