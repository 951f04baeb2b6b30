// Package transition animates a slide sliding into place with a spring.
package transition

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"swipedeck/internal/carousel"
)

// FPS is the animation frame rate
const FPS = 60

// settle thresholds, in cells and cells per frame
const (
	restOffset   = 0.5
	restVelocity = 0.5
)

// EnterOffset is where an incoming slide starts: from the right when moving
// forward, from the left when moving backward
func EnterOffset(dir carousel.Direction, distance float64) float64 {
	switch dir {
	case carousel.DirectionForward:
		return distance
	case carousel.DirectionBackward:
		return -distance
	default:
		return 0
	}
}

// ExitOffset is where an outgoing slide ends up, opposite to EnterOffset
func ExitOffset(dir carousel.Direction, distance float64) float64 {
	return -EnterOffset(dir, distance)
}

// SpringParams converts mass-spring stiffness and damping (unit mass) into
// harmonica's angular frequency and damping ratio
func SpringParams(stiffness, damping float64) (angularFrequency, dampingRatio float64) {
	angularFrequency = math.Sqrt(stiffness)
	if angularFrequency == 0 {
		return 0, 0
	}
	dampingRatio = damping / (2 * angularFrequency)
	return angularFrequency, dampingRatio
}

// Animator tracks the horizontal offset of the slide being shown
type Animator struct {
	spring   harmonica.Spring
	enabled  bool
	pos      float64
	velocity float64
	active   bool
}

// New creates an animator from spring stiffness and damping
func New(stiffness, damping float64, enabled bool) *Animator {
	freq, ratio := SpringParams(stiffness, damping)
	return &Animator{
		spring:  harmonica.NewSpring(harmonica.FPS(FPS), freq, ratio),
		enabled: enabled && freq > 0,
	}
}

// Start begins a transition for a slide arriving from direction dir
// across distance cells. It returns false when nothing needs animating.
func (a *Animator) Start(dir carousel.Direction, distance float64) bool {
	if !a.enabled || dir == carousel.DirectionNone || distance <= 0 {
		a.Stop()
		return false
	}
	a.pos = EnterOffset(dir, distance)
	a.velocity = 0
	a.active = true
	return true
}

// Follow pins the slide at a drag offset with no spring motion
func (a *Animator) Follow(offset float64) {
	a.pos = offset
	a.velocity = 0
	a.active = false
}

// Release lets a dragged slide spring back to rest
func (a *Animator) Release() bool {
	if !a.enabled || math.Abs(a.pos) < restOffset {
		a.Stop()
		return false
	}
	a.active = true
	return true
}

// Step advances one frame. It returns true while the animation is running.
func (a *Animator) Step() bool {
	if !a.active {
		return false
	}
	a.pos, a.velocity = a.spring.Update(a.pos, a.velocity, 0)
	if math.Abs(a.pos) < restOffset && math.Abs(a.velocity) < restVelocity {
		a.Stop()
		return false
	}
	return true
}

// Stop snaps to rest
func (a *Animator) Stop() {
	a.pos = 0
	a.velocity = 0
	a.active = false
}

// Active reports whether frames are still needed
func (a *Animator) Active() bool {
	return a.active
}

// Offset returns the current offset rounded to whole cells
func (a *Animator) Offset() int {
	return int(math.Round(a.pos))
}
