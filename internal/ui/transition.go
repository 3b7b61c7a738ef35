package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	frameRate     = 60
	frameInterval = time.Second / frameRate

	// OverlayTransitionDuration is used for both the enter and exit of the
	// mobile overlay.
	OverlayTransitionDuration = 300 * time.Millisecond

	widthSpringFrequency = 12.0
	widthSpringDamping   = 1.0
)

// frameMsg advances the animation of the component with the matching id.
type frameMsg struct {
	id string
}

func frameCmd(id string) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

// Tween moves between closed (0) and open (1) over a fixed duration with
// ease-in-out timing. Progress is linear; Value applies the easing.
type Tween struct {
	Duration time.Duration
	progress float64
	target   float64
}

// NewOverlayTween returns a tween resting at the given end.
func NewOverlayTween(open bool) Tween {
	t := Tween{Duration: OverlayTransitionDuration}
	t.SetTarget(open)
	t.progress = t.target
	return t
}

// SetTarget picks the end the tween runs toward.
func (t *Tween) SetTarget(open bool) {
	if open {
		t.target = 1
	} else {
		t.target = 0
	}
}

// Opening reports whether the tween targets the open end.
func (t *Tween) Opening() bool { return t.target == 1 }

// Active reports whether the tween has not yet reached its target.
func (t *Tween) Active() bool { return t.progress != t.target }

// Progress returns linear progress in [0, 1].
func (t *Tween) Progress() float64 { return t.progress }

// Value returns eased progress in [0, 1].
func (t *Tween) Value() float64 { return easeInOut(t.progress) }

// Advance moves the tween by dt.
func (t *Tween) Advance(dt time.Duration) {
	if t.Duration <= 0 {
		t.progress = t.target
		return
	}
	step := float64(dt) / float64(t.Duration)
	switch {
	case t.progress < t.target:
		t.progress = math.Min(t.progress+step, t.target)
	case t.progress > t.target:
		t.progress = math.Max(t.progress-step, t.target)
	}
}

func easeInOut(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}

// widthSpring animates a column width toward its target.
type widthSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newWidthSpring(width int) widthSpring {
	return widthSpring{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), widthSpringFrequency, widthSpringDamping),
		pos:    float64(width),
		target: float64(width),
	}
}

func (s *widthSpring) setTarget(width int) { s.target = float64(width) }

func (s *widthSpring) jump(width int) {
	s.pos = float64(width)
	s.target = s.pos
	s.vel = 0
}

func (s *widthSpring) step() {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.05 && math.Abs(s.vel) < 0.05 {
		s.pos = s.target
		s.vel = 0
	}
}

func (s *widthSpring) settled() bool { return s.pos == s.target && s.vel == 0 }

func (s *widthSpring) width() int { return int(math.Round(s.pos)) }

func (s *widthSpring) targetWidth() int { return int(s.target) }
