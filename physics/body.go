package physics

import "github.com/automoto/dashjam/gamemath"

// Body is implemented by every actor that takes part in physics. An actor
// may contribute zero, one or many entries per frame.
type Body interface {
	// Bodies returns fresh copies of the actor's physics objects.
	Bodies() []Entry
	// PrePhysics runs before the frame is resolved.
	PrePhysics()
	// Resolve commits the outcome for one of the actor's ids. Notify-only
	// calls carry zero delta and resolve.
	Resolve(id ID, delta, resolve gamemath.Vec, contacts []Contact)
}
