package gamemath

// Approach moves current toward target by at most step and never overshoots.
func Approach(current, target, step float64) float64 {
	if current < target {
		if current+step > target {
			return target
		}
		return current + step
	}
	if current-step < target {
		return target
	}
	return current - step
}
