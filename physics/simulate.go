package physics

import "github.com/automoto/dashjam/gamemath"

// ResolveFunc receives the outcome of a frame for one id. For a mover, delta
// is its velocity times dt and resolve the correction applied on top of it;
// obj is the object as it was in the snapshot. Entities that were only
// touched get a notify-only call with zero delta and resolve and a single
// contact naming the mover.
type ResolveFunc func(id ID, delta, resolve gamemath.Vec, obj Object, contacts []Contact)

// Attempt is one resolve candidate the resolver evaluated.
type Attempt struct {
	Mover    ID
	Box      gamemath.BoundingBox
	Overlaps int
	Accepted bool
}

// Resolver advances movable objects and searches for corrective offsets.
type Resolver struct {
	// Trace, when set, receives every evaluated candidate.
	Trace func(Attempt)
}

// Simulate runs a Resolver without tracing.
func Simulate(dt float64, snap Snapshot, fn ResolveFunc) {
	var r Resolver
	r.Simulate(dt, snap, fn)
}

// Simulate moves every object with CanMove set, one at a time, x axis then y
// axis. The snapshot is copied first; fn is the only way results leave the
// resolver. Iteration order over the snapshot is unspecified.
func (r *Resolver) Simulate(dt float64, snap Snapshot, fn ResolveFunc) {
	own := make(Snapshot, len(snap))
	ids := make([]ID, 0, len(snap))
	for id, obj := range snap {
		own[id] = obj
		ids = append(ids, id)
	}

	for _, id := range ids {
		obj := own[id]
		if !obj.CanMove {
			continue
		}
		r.move(dt, own, id, obj, fn)
	}
}

func (r *Resolver) move(dt float64, snap Snapshot, id ID, obj Object, fn ResolveFunc) {
	delta := obj.Velocity.Scale(dt)

	var total gamemath.Vec
	var contacts []Contact
	seen := make(map[ID]struct{})

	for _, axisDelta := range [2]gamemath.Vec{{X: delta.X}, {Y: delta.Y}} {
		tentative := obj.Box.Moved(total.Add(axisDelta))

		for otherID, other := range snap {
			if otherID == id || !obj.CollidesWith.Has(other.Type) {
				continue
			}
			if !gamemath.DoesIntersect(tentative, other.Box) {
				continue
			}
			if _, ok := seen[otherID]; ok {
				continue
			}
			seen[otherID] = struct{}{}
			contacts = append(contacts, Contact{Type: other.Type, ID: otherID})
		}

		best := r.search(snap, id, obj.MoveBy, tentative, axisDelta)
		total = total.Add(axisDelta).Add(best)
	}

	fn(id, delta, total.Sub(delta), obj, contacts)

	// later movers search against the committed position
	committed := obj
	committed.Box = obj.Box.Moved(total)
	snap[id] = committed

	for _, c := range contacts {
		other, ok := snap[c.ID]
		if !ok {
			continue
		}
		fn(c.ID, gamemath.Vec{}, gamemath.Vec{}, other, []Contact{{Type: obj.Type, ID: id}})
	}
}

// search returns the offset with the best (blocking overlaps, squared length)
// goodness. The zero offset starts with the overlaps at the tentative box and
// the squared length of the axis delta.
func (r *Resolver) search(snap Snapshot, id ID, moveBy TypeSet, tentative gamemath.BoundingBox, axisDelta gamemath.Vec) gamemath.Vec {
	var best gamemath.Vec
	bestOverlaps := countBlocking(snap, id, moveBy, tentative)
	bestLenSq := axisDelta.LenSq()

	var attempts []Attempt
	accepted := -1

	for otherID, other := range snap {
		if otherID == id || !moveBy.Has(other.Type) {
			continue
		}
		for _, c := range gamemath.ResolveCandidates(tentative, other.Box) {
			moved := tentative.Moved(c)
			overlaps := countBlocking(snap, id, moveBy, moved)
			lenSq := c.LenSq()
			if r.Trace != nil {
				attempts = append(attempts, Attempt{Mover: id, Box: moved, Overlaps: overlaps})
			}
			if overlaps < bestOverlaps || (overlaps == bestOverlaps && lenSq < bestLenSq) {
				best, bestOverlaps, bestLenSq = c, overlaps, lenSq
				accepted = len(attempts) - 1
			}
		}
	}

	for i, a := range attempts {
		a.Accepted = i == accepted
		r.Trace(a)
	}
	return best
}

func countBlocking(snap Snapshot, id ID, moveBy TypeSet, b gamemath.BoundingBox) int {
	n := 0
	for otherID, other := range snap {
		if otherID == id || !moveBy.Has(other.Type) {
			continue
		}
		if gamemath.DoesIntersect(b, other.Box) {
			n++
		}
	}
	return n
}
