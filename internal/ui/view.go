package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Sidebar children, dialog fields and modals are all Views.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Clickable is implemented by views that react to a left-button press
// delivered by their container.
type Clickable interface {
	Click() tea.Cmd
}

// widthFitter is implemented by children that can clip themselves to a column.
type widthFitter interface {
	Fit(width int) string
}

func fitView(v View, width int) string {
	if f, ok := v.(widthFitter); ok {
		return f.Fit(width)
	}
	return v.View()
}

// clickChildAt forwards a press on row y (relative to the first child) to the
// child occupying that row. Children are stacked vertically in order.
func clickChildAt(children []View, y int) tea.Cmd {
	if y < 0 {
		return nil
	}
	row := 0
	for _, c := range children {
		h := viewHeight(c)
		if y < row+h {
			if cl, ok := c.(Clickable); ok {
				return cl.Click()
			}
			return nil
		}
		row += h
	}
	return nil
}

func viewHeight(v View) int {
	s := v.View()
	if s == "" {
		return 1
	}
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
