package gltex

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rect is an axis-aligned texel region, used to address sub-regions of a
// texture for uploads.
type Rect[T constraints.Unsigned] struct {
	Min [2]T
	Max [2]T
}

func RectFromSize[T constraints.Unsigned](x, y, w, h T) Rect[T] {
	return Rect[T]{
		Min: [2]T{x, y},
		Max: [2]T{x + w, y + h},
	}
}

func (r Rect[T]) Width() T {
	return r.Max[0] - r.Min[0]
}

func (r Rect[T]) Height() T {
	return r.Max[1] - r.Min[1]
}

func (r Rect[T]) Contains(other Rect[T]) bool {
	return other.Min[0] >= r.Min[0] &&
		other.Min[1] >= r.Min[1] &&
		other.Max[0] <= r.Max[0] &&
		other.Max[1] <= r.Max[1]
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%d,%d - %d,%d]", r.Min[0], r.Min[1], r.Max[0], r.Max[1])
}
