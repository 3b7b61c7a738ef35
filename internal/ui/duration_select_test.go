package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDurationSelect_EmptyList(t *testing.T) {
	_, err := NewDurationSelect(nil)
	assert.ErrorIs(t, err, ErrNoDurations)
}

func TestDurationSelect_ItemsAreOptionsInOrder(t *testing.T) {
	s, err := NewDurationSelect([]string{"30 min", "1 hour", "2 hours"})
	require.NoError(t, err)

	var got []string
	for _, it := range s.list.Items() {
		got = append(got, string(it.(durationItem)))
	}
	assert.Equal(t, []string{"30 min", "1 hour", "2 hours"}, got)
	assert.Equal(t, DurationPlaceholder, s.list.Title, "placeholder is the header, not an item")
}

func TestDurationSelect_ExpandedViewListsEachOptionOnce(t *testing.T) {
	s, err := NewDurationSelect([]string{"30 min", "1 hour", "2 hours"})
	require.NoError(t, err)
	s.Focus()
	s.Update(keyMsg("enter"))
	require.True(t, s.Expanded())

	view := s.View()
	for _, row := range []string{DurationPlaceholder, "30 min", "1 hour", "2 hours"} {
		assert.Equal(t, 1, strings.Count(view, row), "row %q", row)
	}
	assert.Less(t, strings.Index(view, DurationPlaceholder), strings.Index(view, "30 min"))
	assert.Less(t, strings.Index(view, "30 min"), strings.Index(view, "1 hour"))
	assert.Less(t, strings.Index(view, "1 hour"), strings.Index(view, "2 hours"))
}

func TestDurationSelect_PlaceholderIsNotAValue(t *testing.T) {
	s, err := NewDurationSelect([]string{"30 min", "1 hour"})
	require.NoError(t, err)

	_, ok := s.Value()
	assert.False(t, ok)
	assert.Equal(t, DurationPlaceholder, s.Display())

	// Moving up from the first option never reaches the placeholder.
	s.Focus()
	s.Update(keyMsg("enter"))
	for range 5 {
		s.Update(keyMsg("up"))
	}
	assert.Equal(t, 0, s.list.Index())
	s.Update(keyMsg("enter"))
	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, "30 min", v)
}

func TestDurationSelect_KeyboardFlow(t *testing.T) {
	s, err := NewDurationSelect([]string{"30 min", "1 hour", "2 hours"})
	require.NoError(t, err)

	// Unfocused selectors ignore keys.
	s.Update(keyMsg("enter"))
	assert.False(t, s.Expanded())

	s.Focus()
	s.Update(keyMsg("enter"))
	require.True(t, s.Expanded())
	s.Update(keyMsg("down"))
	s.Update(keyMsg("down"))
	s.Update(keyMsg("down")) // clamped at the last option
	assert.Equal(t, 2, s.list.Index())
	s.Update(keyMsg("enter"))

	assert.False(t, s.Expanded())
	assert.Equal(t, "2 hours", s.Display())

	s.Update(keyMsg("enter"))
	assert.Equal(t, 2, s.list.Index(), "reopening starts at the current choice")
	s.Update(keyMsg("up"))
	s.Update(keyMsg("esc"))
	assert.False(t, s.Expanded())
	assert.Equal(t, "2 hours", s.Display(), "esc keeps the previous choice")
}

func TestDurationSelect_OptionsAreCopied(t *testing.T) {
	src := []string{"30 min"}
	s, err := NewDurationSelect(src)
	require.NoError(t, err)

	src[0] = "changed"
	assert.Equal(t, []string{"30 min"}, s.options)
}
