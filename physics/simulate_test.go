package physics_test

import (
	"math"
	"testing"

	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
	"pgregory.net/rapid"
)

const tolerance = 1e-9

type call struct {
	id       physics.ID
	delta    gamemath.Vec
	resolve  gamemath.Vec
	obj      physics.Object
	contacts []physics.Contact
}

type recorder struct {
	calls []call
}

func (r *recorder) fn(id physics.ID, delta, resolve gamemath.Vec, obj physics.Object, contacts []physics.Contact) {
	r.calls = append(r.calls, call{id, delta, resolve, obj, contacts})
}

func (r *recorder) forID(id physics.ID) []call {
	var out []call
	for _, c := range r.calls {
		if c.id == id {
			out = append(out, c)
		}
	}
	return out
}

// mover returns the single call for id with a non-zero delta or resolve, or
// the first call when every call was notify-only.
func (r *recorder) mover(t *testing.T, id physics.ID) call {
	t.Helper()
	calls := r.forID(id)
	if len(calls) == 0 {
		t.Fatalf("expected a callback for %v", id)
	}
	for _, c := range calls {
		if !c.delta.IsZero() || !c.resolve.IsZero() {
			return c
		}
	}
	return calls[0]
}

func box(x, y, w, h float64) gamemath.BoundingBox {
	return gamemath.MustBoundingBox(gamemath.Vec{X: x, Y: y}, w, h)
}

func wall(x, y float64) physics.Object {
	return physics.Object{
		Box:          box(x, y, 1, 1),
		Type:         physics.Wall,
		CollidesWith: physics.AllTypes(),
		MoveBy:       physics.NewTypeSet(physics.Wall),
	}
}

func crate(x, y, vx, vy float64) physics.Object {
	return physics.Object{
		Box:          box(x, y, 1, 1),
		Velocity:     gamemath.Vec{X: vx, Y: vy},
		CanMove:      true,
		Type:         physics.Player,
		CollidesWith: physics.NewTypeSet(physics.Wall),
		MoveBy:       physics.NewTypeSet(physics.Wall),
	}
}

func approxEqual(a, b gamemath.Vec) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func TestSimulateTouchingWallNeedsNoResolve(t *testing.T) {
	moverID, wallID := physics.NewID(), physics.NewID()
	snap := physics.Snapshot{moverID: crate(0, 0, 1, 0), wallID: wall(2, 0)}

	var rec recorder
	physics.Simulate(1, snap, rec.fn)

	got := rec.mover(t, moverID)
	if !approxEqual(got.delta, gamemath.Vec{X: 1}) {
		t.Fatalf("expected delta (1, 0), got %v", got.delta)
	}
	if !got.resolve.IsZero() {
		t.Fatalf("expected zero resolve against a touching wall, got %v", got.resolve)
	}
	if len(got.contacts) != 0 {
		t.Fatalf("expected no contacts, got %v", got.contacts)
	}
	if len(rec.forID(wallID)) != 0 {
		t.Fatalf("expected the wall not to be notified")
	}
}

func TestSimulateResolvesIntoWall(t *testing.T) {
	moverID, wallID := physics.NewID(), physics.NewID()
	snap := physics.Snapshot{moverID: crate(0, 0, 1, 0), wallID: wall(2, 0)}

	var rec recorder
	physics.Simulate(1.5, snap, rec.fn)

	got := rec.mover(t, moverID)
	want := gamemath.Vec{X: -(0.5 + gamemath.ResolveOffset)}
	if !approxEqual(got.resolve, want) {
		t.Fatalf("expected resolve %v, got %v", want, got.resolve)
	}
	final := got.obj.Box.Moved(got.delta.Add(got.resolve))
	if gamemath.DoesIntersect(final, snap[wallID].Box) {
		t.Fatalf("expected no overlap after resolution, final box %v", final)
	}
	if len(got.contacts) != 1 || got.contacts[0].ID != wallID || got.contacts[0].Type != physics.Wall {
		t.Fatalf("expected a wall contact, got %v", got.contacts)
	}

	notified := rec.forID(wallID)
	if len(notified) != 1 {
		t.Fatalf("expected one notify-only call for the wall, got %d", len(notified))
	}
	n := notified[0]
	if !n.delta.IsZero() || !n.resolve.IsZero() {
		t.Fatalf("expected zero delta and resolve for the wall, got %v %v", n.delta, n.resolve)
	}
	if len(n.contacts) != 1 || n.contacts[0].ID != moverID || n.contacts[0].Type != physics.Player {
		t.Fatalf("expected the wall to learn about the mover, got %v", n.contacts)
	}
}

func TestSimulateResolvesXBeforeY(t *testing.T) {
	// The wall only spans the mover's rows before the y move. Resolving x
	// first bumps into it; resolving y first would slide past to (1, 1).
	moverID, wallID := physics.NewID(), physics.NewID()
	snap := physics.Snapshot{moverID: crate(0, 0, 1, 1), wallID: wall(1.6, 0)}

	var rec recorder
	physics.Simulate(1, snap, rec.fn)

	got := rec.mover(t, moverID)
	wantResolve := gamemath.Vec{X: -(0.4 + gamemath.ResolveOffset)}
	if !approxEqual(got.resolve, wantResolve) {
		t.Fatalf("expected resolve %v, got %v", wantResolve, got.resolve)
	}
	final := got.obj.Box.Center.Add(got.delta).Add(got.resolve)
	want := gamemath.Vec{X: 0.6 - gamemath.ResolveOffset, Y: 1}
	if !approxEqual(final, want) {
		t.Fatalf("expected final center %v, got %v", want, final)
	}
	if approxEqual(final, gamemath.Vec{X: 1, Y: 1}) {
		t.Fatalf("expected x-then-y order to differ from y-then-x")
	}
}

func TestSimulateProjectilePassesThroughEnemy(t *testing.T) {
	projID, enemyID := physics.NewID(), physics.NewID()
	proj := physics.Object{
		Box:          box(0, 0, 0.25, 0.25),
		Velocity:     gamemath.Vec{X: 1},
		CanMove:      true,
		Type:         physics.Projectile(physics.ProjectileBasic),
		CollidesWith: physics.NewTypeSet(physics.Enemy, physics.Wall),
	}
	enemy := physics.Object{
		Box:          box(1, 0, 1, 1),
		CanMove:      true,
		Type:         physics.Enemy,
		CollidesWith: physics.NewTypeSet(physics.Player, physics.Wall),
		MoveBy:       physics.NewTypeSet(physics.Wall),
	}
	snap := physics.Snapshot{projID: proj, enemyID: enemy}

	var rec recorder
	physics.Simulate(1, snap, rec.fn)

	got := rec.mover(t, projID)
	if !got.resolve.IsZero() {
		t.Fatalf("expected the projectile not to be displaced, got %v", got.resolve)
	}
	if !approxEqual(got.delta, gamemath.Vec{X: 1}) {
		t.Fatalf("expected full delta, got %v", got.delta)
	}
	if len(got.contacts) != 1 || got.contacts[0] != (physics.Contact{Type: physics.Enemy, ID: enemyID}) {
		t.Fatalf("expected an enemy contact, got %v", got.contacts)
	}

	var notified bool
	for _, c := range rec.forID(enemyID) {
		if !c.delta.IsZero() || !c.resolve.IsZero() {
			t.Fatalf("expected the stationary enemy not to move, got %v %v", c.delta, c.resolve)
		}
		if len(c.contacts) == 1 && c.contacts[0].ID == projID && c.contacts[0].Type.IsProjectile() {
			notified = true
		}
	}
	if !notified {
		t.Fatalf("expected the enemy to be notified of the projectile")
	}
}

func TestSimulateSkipsImmovableObjects(t *testing.T) {
	wallID := physics.NewID()
	w := wall(0, 0)
	w.Velocity = gamemath.Vec{X: 5}
	var rec recorder
	physics.Simulate(1, physics.Snapshot{wallID: w}, rec.fn)
	if len(rec.calls) != 0 {
		t.Fatalf("expected no callbacks for an immovable object, got %d", len(rec.calls))
	}
}

func TestSimulateLeavesResidualOverlap(t *testing.T) {
	// Wedged between two walls: pushing out of one pushes into the other,
	// so the search settles on a single remaining overlap.
	moverID := physics.NewID()
	left, right := physics.NewID(), physics.NewID()
	snap := physics.Snapshot{
		moverID: crate(0, 0, 0, 0),
		left:    wall(-0.9, 0),
		right:   wall(0.9, 0),
	}

	var rec recorder
	physics.Simulate(1, snap, rec.fn)

	got := rec.mover(t, moverID)
	final := got.obj.Box.Moved(got.delta.Add(got.resolve))
	overlaps := 0
	for _, id := range []physics.ID{left, right} {
		if gamemath.DoesIntersect(final, snap[id].Box) {
			overlaps++
		}
	}
	if overlaps != 1 {
		t.Fatalf("expected one residual overlap, got %d (final %v)", overlaps, final)
	}
}

func TestSimulateDoesNotMutateSnapshot(t *testing.T) {
	moverID, wallID := physics.NewID(), physics.NewID()
	snap := physics.Snapshot{moverID: crate(0, 0, 1, 0), wallID: wall(2, 0)}
	before := snap[moverID]
	physics.Simulate(1.5, snap, func(physics.ID, gamemath.Vec, gamemath.Vec, physics.Object, []physics.Contact) {})
	if snap[moverID] != before {
		t.Fatalf("expected caller snapshot to be untouched")
	}
}

func TestResolverTraceMarksAcceptedCandidate(t *testing.T) {
	moverID, wallID := physics.NewID(), physics.NewID()
	snap := physics.Snapshot{moverID: crate(0, 0, 1, 0), wallID: wall(2, 0.5)}

	var attempts []physics.Attempt
	r := physics.Resolver{Trace: func(a physics.Attempt) { attempts = append(attempts, a) }}
	r.Simulate(1.5, snap, func(physics.ID, gamemath.Vec, gamemath.Vec, physics.Object, []physics.Contact) {})

	if len(attempts) != 2 {
		t.Fatalf("expected both candidates to be traced, got %d", len(attempts))
	}
	accepted := 0
	for _, a := range attempts {
		if a.Mover != moverID {
			t.Fatalf("expected attempts for the mover only, got %v", a.Mover)
		}
		if a.Accepted {
			accepted++
			if a.Overlaps != 0 {
				t.Fatalf("expected the accepted candidate to clear the wall, got %d overlaps", a.Overlaps)
			}
		}
	}
	if accepted != 1 {
		t.Fatalf("expected exactly one accepted attempt, got %d", accepted)
	}
}

func TestSimulateNeverIncreasesBlockingOverlaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		moverID := physics.NewID()
		vx := rapid.Float64Range(-3, 3).Draw(t, "vx")
		snap := physics.Snapshot{moverID: crate(0, 0, vx, 0)}

		n := rapid.IntRange(1, 6).Draw(t, "walls")
		for i := 0; i < n; i++ {
			x := rapid.Float64Range(-4, 4).Draw(t, "wx")
			y := rapid.Float64Range(-1.5, 1.5).Draw(t, "wy")
			snap[physics.NewID()] = wall(x, y)
		}

		count := func(b gamemath.BoundingBox) int {
			c := 0
			for id, o := range snap {
				if id != moverID && gamemath.DoesIntersect(b, o.Box) {
					c++
				}
			}
			return c
		}

		physics.Simulate(1, snap, func(id physics.ID, delta, resolve gamemath.Vec, obj physics.Object, _ []physics.Contact) {
			if id != moverID {
				return
			}
			before := count(obj.Box.Moved(delta))
			after := count(obj.Box.Moved(delta.Add(resolve)))
			if after > before {
				t.Fatalf("resolution increased overlaps from %d to %d", before, after)
			}
		})
	})
}
