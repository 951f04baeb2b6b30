package carousel

import "math"

// SwipePower weights the drag distance by the signed release velocity
func SwipePower(offset, velocity float64) float64 {
	return math.Abs(offset) * velocity
}

// InterpretGesture maps a drag sample to a navigation direction.
// Dragging toward negative offsets past the threshold means forward.
func InterpretGesture(offset, velocity, threshold float64) Direction {
	power := SwipePower(offset, velocity)
	switch {
	case math.IsNaN(power):
		return DirectionNone
	case power < -threshold:
		return DirectionForward
	case power > threshold:
		return DirectionBackward
	default:
		return DirectionNone
	}
}
