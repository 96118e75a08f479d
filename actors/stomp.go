package actors

import (
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
)

// Stomp reports whether stomper landed on stomped: the stomper's center must
// be above the stomped center by more than cfg.Stomp.Ratio of their combined
// half-heights.
func Stomp(stomper, stomped gamemath.BoundingBox) bool {
	halves := stomper.Height/2 + stomped.Height/2
	return stomped.Center.Y-stomper.Center.Y > cfg.Stomp.Ratio*halves
}
