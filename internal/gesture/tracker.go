// Package gesture summarizes a pointer drag into the offset and velocity
// sample that carousel.InterpretGesture consumes.
package gesture

import "time"

// DefaultWindow is how far back motion points count toward release velocity
const DefaultWindow = 100 * time.Millisecond

// Sample is a finished drag
type Sample struct {
	Offset   float64       // release position minus press position, scaled
	Velocity float64       // scaled units per second over the trailing window
	Duration time.Duration // press to release
}

type point struct {
	x  float64
	at time.Time
}

// Tracker records one horizontal drag at a time.
// Callers supply timestamps; the tracker never reads the clock.
type Tracker struct {
	Scale  float64       // multiplier applied to raw positions (e.g. pixels per cell)
	Window time.Duration // velocity window, DefaultWindow when zero

	dragging bool
	start    point
	points   []point
}

// NewTracker creates a tracker with the given scale and velocity window
func NewTracker(scale float64, window time.Duration) *Tracker {
	if scale <= 0 {
		scale = 1
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{Scale: scale, Window: window}
}

// Press starts a drag at x
func (t *Tracker) Press(x float64, at time.Time) {
	t.dragging = true
	t.start = point{x: x, at: at}
	t.points = append(t.points[:0], t.start)
}

// Move records pointer motion. Ignored when no drag is active.
func (t *Tracker) Move(x float64, at time.Time) {
	if !t.dragging {
		return
	}
	t.points = append(t.points, point{x: x, at: at})
	t.trim(at)
}

// Release ends the drag and returns its sample.
// It returns false when no drag was active.
func (t *Tracker) Release(x float64, at time.Time) (Sample, bool) {
	if !t.dragging {
		return Sample{}, false
	}
	t.Move(x, at)
	t.dragging = false

	sample := Sample{
		Offset:   (x - t.start.x) * t.scale(),
		Velocity: t.velocity(),
		Duration: at.Sub(t.start.at),
	}
	t.points = t.points[:0]
	return sample, true
}

// Cancel drops the active drag without producing a sample
func (t *Tracker) Cancel() {
	t.dragging = false
	t.points = t.points[:0]
}

// Dragging reports whether a drag is in progress
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Offset returns the current scaled drag offset, zero when idle
func (t *Tracker) Offset() float64 {
	if !t.dragging || len(t.points) == 0 {
		return 0
	}
	last := t.points[len(t.points)-1]
	return (last.x - t.start.x) * t.scale()
}

func (t *Tracker) scale() float64 {
	if t.Scale <= 0 {
		return 1
	}
	return t.Scale
}

func (t *Tracker) window() time.Duration {
	if t.Window <= 0 {
		return DefaultWindow
	}
	return t.Window
}

// trim drops points older than the window but always keeps one anchor
// point before it so velocity has a baseline.
func (t *Tracker) trim(now time.Time) {
	cutoff := now.Add(-t.window())
	keep := 0
	for keep < len(t.points)-1 && t.points[keep+1].at.Before(cutoff) {
		keep++
	}
	if keep > 0 {
		t.points = append(t.points[:0], t.points[keep:]...)
	}
}

func (t *Tracker) velocity() float64 {
	if len(t.points) < 2 {
		return 0
	}
	first := t.points[0]
	last := t.points[len(t.points)-1]
	elapsed := last.at.Sub(first.at).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return (last.x - first.x) * t.scale() / elapsed
}
