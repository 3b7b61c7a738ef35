package ui

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoSidebarProvider is returned when a sidebar component is built without
// the provider that owns its open/closed state.
var ErrNoSidebarProvider = errors.New("sidebar: component must be used within a SidebarProvider")

// visibility is where a provider's open flag actually lives.
type visibility interface {
	open() bool
	setOpen(bool)
}

// ownedVisibility is the self-managed variant: the provider holds the flag.
type ownedVisibility struct {
	value bool
}

func (v *ownedVisibility) open() bool      { return v.value }
func (v *ownedVisibility) setOpen(b bool) { v.value = b }

// controlledVisibility is the externally-controlled variant: reads and writes
// go straight to the caller's accessor pair.
type controlledVisibility struct {
	get func() bool
	set func(bool)
}

func (v controlledVisibility) open() bool      { return v.get() }
func (v controlledVisibility) setOpen(b bool) { v.set(b) }

type sidebarOptions struct {
	get      func() bool
	set      func(bool)
	animate  bool
	onChange []func(open bool)
}

// SidebarOption configures a SidebarProvider at construction.
type SidebarOption func(*sidebarOptions)

// WithControlledState makes the provider defer to an external open flag.
// Both get and set must be non-nil; otherwise the provider manages its own state.
func WithControlledState(get func() bool, set func(bool)) SidebarOption {
	return func(o *sidebarOptions) {
		o.get = get
		o.set = set
	}
}

// WithAnimate enables or disables open/closed driven animation (default on).
func WithAnimate(animate bool) SidebarOption {
	return func(o *sidebarOptions) {
		o.animate = animate
	}
}

// WithOnChange registers an observer called after every write through the provider.
func WithOnChange(fn func(open bool)) SidebarOption {
	return func(o *sidebarOptions) {
		if fn != nil {
			o.onChange = append(o.onChange, fn)
		}
	}
}

// SidebarProvider owns (or proxies) the single open/closed flag shared by the
// desktop sidebar, the mobile sidebar and sidebar buttons. Components receive
// the provider explicitly at construction.
type SidebarProvider struct {
	id         string
	state      visibility
	controlled bool
	animate    bool
	onChange   []func(open bool)
}

// NewSidebarProvider creates a provider. The state variant is fixed here and
// never changes for the provider's lifetime.
func NewSidebarProvider(opts ...SidebarOption) *SidebarProvider {
	o := sidebarOptions{animate: true}
	for _, opt := range opts {
		opt(&o)
	}
	p := &SidebarProvider{
		id:       uuid.NewString(),
		animate:  o.animate,
		onChange: o.onChange,
	}
	if o.get != nil && o.set != nil {
		p.state = controlledVisibility{get: o.get, set: o.set}
		p.controlled = true
	} else {
		p.state = &ownedVisibility{}
	}
	return p
}

// UseSidebar returns the provider a component should read from, or
// ErrNoSidebarProvider if there is none.
func UseSidebar(p *SidebarProvider) (*SidebarProvider, error) {
	if p == nil {
		return nil, ErrNoSidebarProvider
	}
	return p, nil
}

// ID identifies the provider scope in logs and traces.
func (p *SidebarProvider) ID() string { return p.id }

// Open reports whether the sidebar is open.
func (p *SidebarProvider) Open() bool { return p.state.open() }

// Animate reports whether components should animate with the open flag.
func (p *SidebarProvider) Animate() bool { return p.animate }

// Controlled reports whether the flag lives outside the provider.
func (p *SidebarProvider) Controlled() bool { return p.controlled }

// SetOpen writes the flag and notifies observers.
func (p *SidebarProvider) SetOpen(open bool) {
	p.state.setOpen(open)
	for _, fn := range p.onChange {
		fn(open)
	}
}

// Toggle flips the flag.
func (p *SidebarProvider) Toggle() {
	p.SetOpen(!p.Open())
}
