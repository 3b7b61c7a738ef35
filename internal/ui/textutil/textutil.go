// Package textutil measures and clips sidebar labels by terminal column.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks a clipped label.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Clip shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was dropped. Wide runes are never split.
func Clip(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	room := maxWidth - Width(Ellipsis)
	if room <= 0 {
		return Ellipsis
	}
	return runewidth.Truncate(s, room, "") + Ellipsis
}
