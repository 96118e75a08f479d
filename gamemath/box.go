package gamemath

import (
	"errors"
	"fmt"
	"math"
)

// ResolveOffset is added to every resolve candidate so the resolved boxes are
// strictly apart and do not re-trigger the open-interval intersection test.
const ResolveOffset = 0.00005

// ErrDegenerateBox is returned for boxes with a non-positive or NaN extent.
var ErrDegenerateBox = errors.New("degenerate bounding box")

// BoundingBox is an axis-aligned box described by its center and size.
type BoundingBox struct {
	Center Vec
	Width  float64
	Height float64
}

// NewBoundingBox validates the extents and returns the box.
func NewBoundingBox(center Vec, width, height float64) (BoundingBox, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return BoundingBox{}, fmt.Errorf("new bounding box %vx%v: %w", width, height, ErrDegenerateBox)
	}
	return BoundingBox{Center: center, Width: width, Height: height}, nil
}

// MustBoundingBox is NewBoundingBox for sizes known to be valid (config values).
func MustBoundingBox(center Vec, width, height float64) BoundingBox {
	b, err := NewBoundingBox(center, width, height)
	if err != nil {
		panic(err)
	}
	return b
}

func (b BoundingBox) Left() float64   { return b.Center.X - b.Width/2 }
func (b BoundingBox) Right() float64  { return b.Center.X + b.Width/2 }
func (b BoundingBox) Top() float64    { return b.Center.Y - b.Height/2 }
func (b BoundingBox) Bottom() float64 { return b.Center.Y + b.Height/2 }

// HalfExtent returns half the width and height.
func (b BoundingBox) HalfExtent() Vec {
	return Vec{b.Width / 2, b.Height / 2}
}

// Add translates the box in place.
func (b *BoundingBox) Add(offset Vec) {
	b.Center = b.Center.Add(offset)
}

// Moved returns a copy of the box translated by offset.
func (b BoundingBox) Moved(offset Vec) BoundingBox {
	b.Center = b.Center.Add(offset)
	return b
}

// DoesIntersect reports whether the open spans of a and b overlap on both
// axes. Boxes that only share an edge do not intersect.
func DoesIntersect(a, b BoundingBox) bool {
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}

// ResolveCandidates returns the offsets that would separate mover a from
// obstacle b along a single axis. The result is empty when the boxes do not
// intersect and holds at most one x and one y candidate otherwise.
func ResolveCandidates(a, b BoundingBox) []Vec {
	if !DoesIntersect(a, b) {
		return nil
	}
	candidates := make([]Vec, 0, 2)

	switch {
	case b.Left() < a.Left() && a.Left() < b.Right():
		// a's left edge is inside b: push right
		candidates = append(candidates, Vec{X: b.Right() - a.Left() + ResolveOffset})
	case a.Left() < b.Left() && b.Left() < a.Right():
		candidates = append(candidates, Vec{X: -(a.Right() - b.Left() + ResolveOffset)})
	}

	switch {
	case b.Top() < a.Top() && a.Top() < b.Bottom():
		// a's top edge is inside b: push down
		candidates = append(candidates, Vec{Y: b.Bottom() - a.Top() + ResolveOffset})
	case a.Top() < b.Top() && b.Top() < a.Bottom():
		candidates = append(candidates, Vec{Y: -(a.Bottom() - b.Top() + ResolveOffset)})
	}

	return candidates
}
