package ui

// FocusRing tracks which field of a form has focus and rotates through them.
type FocusRing struct {
	order    []string
	current  int
	OnChange func(from, to string)
}

// NewFocusRing creates a ring focused on the first id.
func NewFocusRing(ids ...string) *FocusRing {
	return &FocusRing{order: ids}
}

// Current returns the focused id, or "" for an empty ring.
func (f *FocusRing) Current() string {
	if len(f.order) == 0 {
		return ""
	}
	return f.order[f.current]
}

// Next moves focus forward, wrapping at the end.
func (f *FocusRing) Next() string {
	if len(f.order) == 0 {
		return ""
	}
	return f.moveTo((f.current + 1) % len(f.order))
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusRing) Prev() string {
	if len(f.order) == 0 {
		return ""
	}
	return f.moveTo((f.current - 1 + len(f.order)) % len(f.order))
}

// Focus moves focus to id. Returns false if id is not in the ring.
func (f *FocusRing) Focus(id string) bool {
	for i, o := range f.order {
		if o == id {
			f.moveTo(i)
			return true
		}
	}
	return false
}

func (f *FocusRing) moveTo(i int) string {
	from := f.order[f.current]
	f.current = i
	to := f.order[i]
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}
