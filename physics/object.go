package physics

import (
	"github.com/automoto/dashjam/gamemath"
	"github.com/google/uuid"
)

// ID identifies a physics entity for the lifetime of its owner.
type ID = uuid.UUID

// NewID returns a fresh entity id.
func NewID() ID {
	return uuid.New()
}

// Object is the per-frame physics record of one entity. It is a value: the
// resolver only ever works on copies.
type Object struct {
	Box      gamemath.BoundingBox
	Velocity gamemath.Vec
	CanMove  bool
	Type     ObjType
	// CollidesWith lists the types that produce a contact against this object.
	CollidesWith TypeSet
	// MoveBy lists the types that also block this object's motion.
	MoveBy TypeSet
}

// Entry pairs an id with the object it contributes to a snapshot.
type Entry struct {
	ID     ID
	Object Object
}

// Contact reports an overlap with another entity during a frame.
type Contact struct {
	Type ObjType
	ID   ID
}

// Snapshot is the frozen set of objects one Simulate call works against.
type Snapshot map[ID]Object

// NewSnapshot builds a snapshot from the entries of several bodies.
func NewSnapshot(bodies ...Body) Snapshot {
	snap := make(Snapshot)
	for _, b := range bodies {
		snap.Add(b.Bodies()...)
	}
	return snap
}

func (s Snapshot) Add(entries ...Entry) {
	for _, e := range entries {
		s[e.ID] = e.Object
	}
}
