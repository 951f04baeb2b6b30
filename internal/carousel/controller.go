// Package carousel holds the paginated-slide state for a fixed sequence of
// items and decides transitions for paging, jumping and swipe gestures.
//
// A Controller never renders anything. Hosts read Index and LastDirection
// after each mutation to pick the item to show and the transition to play.
// Controllers are not safe for concurrent use.
package carousel

import (
	"fmt"
	"math"
)

// DefaultSwipeThreshold is the swipe confidence threshold tuned against
// pixel offsets and pixel-per-second velocities.
const DefaultSwipeThreshold = 10000.0

// Option configures a Controller
type Option func(*options)

type options struct {
	swipeThreshold float64
}

// WithSwipeThreshold overrides the gesture confidence threshold
func WithSwipeThreshold(threshold float64) Option {
	return func(o *options) {
		o.swipeThreshold = threshold
	}
}

// Controller owns the current index and last direction for one SlideSet
type Controller[T any] struct {
	set       SlideSet[T]
	state     State
	threshold float64
}

// New creates a controller positioned on the first item
func New[T any](set SlideSet[T], opts ...Option) (*Controller[T], error) {
	o := options{swipeThreshold: DefaultSwipeThreshold}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("nil option: %w", ErrInvalidConfiguration)
		}
		opt(&o)
	}

	if set.items == nil && set.Len() != 0 {
		return nil, fmt.Errorf("slide set has no backing items: %w", ErrInvalidConfiguration)
	}
	if math.IsNaN(o.swipeThreshold) || math.IsInf(o.swipeThreshold, 0) || o.swipeThreshold <= 0 {
		return nil, fmt.Errorf("swipe threshold %v must be a finite positive number: %w", o.swipeThreshold, ErrInvalidConfiguration)
	}

	return &Controller[T]{
		set:       set,
		state:     State{Index: 0, LastDirection: DirectionNone},
		threshold: o.swipeThreshold,
	}, nil
}

// Len returns the number of items in the slide set
func (c *Controller[T]) Len() int {
	return c.set.Len()
}

// Paginated reports whether there is more than one item to page through
func (c *Controller[T]) Paginated() bool {
	return c.set.Len() >= 2
}

// Index returns the current index
func (c *Controller[T]) Index() int {
	return c.state.Index
}

// LastDirection returns the direction of the most recent transition
func (c *Controller[T]) LastDirection() Direction {
	return c.state.LastDirection
}

// State returns a snapshot of the controller state
func (c *Controller[T]) State() State {
	return c.state
}

// Current returns the item at the current index, false for an empty set
func (c *Controller[T]) Current() (T, bool) {
	return c.set.At(c.state.Index)
}

// Items returns a copy of the slide set's items
func (c *Controller[T]) Items() []T {
	return c.set.Items()
}

// SwipeThreshold returns the configured gesture confidence threshold
func (c *Controller[T]) SwipeThreshold() float64 {
	return c.threshold
}

// Paginate moves one step forward (+1) or backward (-1), wrapping at both ends.
// It is a no-op when there are fewer than two items.
func (c *Controller[T]) Paginate(step int) error {
	if step != 1 && step != -1 {
		return fmt.Errorf("paginate step %d must be +1 or -1: %w", step, ErrInvalidArgument)
	}
	n := c.set.Len()
	if n < 2 {
		return nil
	}

	next := c.state.Index + step
	if next < 0 || next >= n {
		if step == 1 {
			next = 0
		} else {
			next = n - 1
		}
	}

	c.state.Index = next
	if step == 1 {
		c.state.LastDirection = DirectionForward
	} else {
		c.state.LastDirection = DirectionBackward
	}
	return nil
}

// Next pages forward
func (c *Controller[T]) Next() error {
	return c.Paginate(1)
}

// Prev pages backward
func (c *Controller[T]) Prev() error {
	return c.Paginate(-1)
}

// JumpTo moves directly to index. Jumping to the current index keeps the
// index and clears the last direction.
func (c *Controller[T]) JumpTo(index int) error {
	n := c.set.Len()
	if n < 2 && index == 0 {
		return nil
	}
	if index < 0 || index >= n {
		return fmt.Errorf("jump to %d with %d slides: %w", index, n, ErrIndexOutOfRange)
	}

	switch {
	case index > c.state.Index:
		c.state.LastDirection = DirectionForward
	case index < c.state.Index:
		c.state.LastDirection = DirectionBackward
	default:
		c.state.LastDirection = DirectionNone
	}
	c.state.Index = index
	return nil
}

// InterpretGesture returns the navigation a drag sample recommends under this
// controller's threshold. It does not change state.
func (c *Controller[T]) InterpretGesture(offset, velocity float64) Direction {
	return InterpretGesture(offset, velocity, c.threshold)
}

// ApplyGesture interprets a drag sample and paginates when it clears the threshold
func (c *Controller[T]) ApplyGesture(offset, velocity float64) (Direction, error) {
	dir := c.InterpretGesture(offset, velocity)
	if dir == DirectionNone {
		return dir, nil
	}
	if err := c.Paginate(dir.Sign()); err != nil {
		return DirectionNone, err
	}
	return dir, nil
}
