package carousel

// Direction records which way the most recent transition moved
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

// String returns the direction name for logs and status lines
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Sign returns +1 for forward, -1 for backward and 0 for none
func (d Direction) Sign() int {
	switch d {
	case DirectionForward:
		return 1
	case DirectionBackward:
		return -1
	default:
		return 0
	}
}

// State is a snapshot of the controller's mutable state
type State struct {
	Index         int
	LastDirection Direction
}

// SlideSet is an immutable ordered sequence of items.
// The zero value is an empty set.
type SlideSet[T any] struct {
	items []T
}

// NewSlideSet copies items into a new set
func NewSlideSet[T any](items ...T) SlideSet[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return SlideSet[T]{items: cp}
}

// Len returns the number of items
func (s SlideSet[T]) Len() int {
	return len(s.items)
}

// At returns the item at index i and whether i was valid
func (s SlideSet[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, false
	}
	return s.items[i], true
}

// Items returns a copy of the underlying items
func (s SlideSet[T]) Items() []T {
	cp := make([]T, len(s.items))
	copy(cp, s.items)
	return cp
}
