package gamemath

import "math"

// InvSqrt2 scales each component of a diagonal unit direction.
var InvSqrt2 = 1 / math.Sqrt2

// AimVelocity returns a velocity of the given speed pointing from origin to
// target. When the two coincide it fires along fallback.
func AimVelocity(origin, target Vec, speed float64, fallback Vec) Vec {
	dir := target.Sub(origin).Normalize()
	if dir.IsZero() {
		dir = fallback.Normalize()
	}
	return dir.Scale(speed)
}

// DashDirection returns the 8-way unit direction for the held movement keys.
// With no key held it dashes horizontally along facingX.
func DashDirection(left, right, up, down bool, facingX float64) Vec {
	var dx, dy float64
	if left && !right {
		dx = -1
	} else if right && !left {
		dx = 1
	}
	if up && !down {
		dy = -1
	} else if down && !up {
		dy = 1
	}
	if dx == 0 && dy == 0 {
		if facingX < 0 {
			return Vec{X: -1}
		}
		return Vec{X: 1}
	}
	if dx != 0 && dy != 0 {
		return Vec{dx * InvSqrt2, dy * InvSqrt2}
	}
	return Vec{dx, dy}
}
