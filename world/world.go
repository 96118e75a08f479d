// Package world wires the actors, the resolver and the stage editor into a
// donburi ECS and exposes the frame-level API a host drives.
package world

import (
	"log"

	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/input"
	"github.com/automoto/dashjam/physics"
	"github.com/automoto/dashjam/systems"
	"github.com/automoto/dashjam/systems/factory"
	"github.com/automoto/dashjam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type World struct {
	ecs   *ecs.ECS
	frame *donburi.Entry
	blank bool
}

// New builds the default room in the mode chosen by the debug config.
func New() *World {
	w := &World{}
	mode := components.ModePlay
	if cfg.Debug.StartInEditor {
		mode = components.ModeEdit
	}
	w.build(mode, cfg.Debug.TraceResolver)
	return w
}

// NewBlank builds a world with an empty stage and no actors.
func NewBlank() *World {
	w := &World{blank: true}
	w.build(components.ModePlay, cfg.Debug.TraceResolver)
	return w
}

func (w *World) build(mode components.Mode, trace bool) {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateMode)
	ecs.AddSystem(systems.UpdateEditor)

	ecs.AddSystem(systems.WithPlayMode(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPlayMode(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPlayMode(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithPlayMode(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPlayMode(systems.UpdateCombat))
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateBanner)

	ecs.AddRenderer(systems.LayerDefault, systems.DrawWorld)
	ecs.AddRenderer(systems.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(systems.LayerDefault, systems.DrawHUD)

	w.ecs = ecs
	w.frame = factory.CreateFrame(ecs, mode)
	w.SetTrace(trace)
	if w.blank {
		factory.CreateStage(ecs)
	} else {
		factory.CreateDefaultStage(ecs)
	}
}

// Update advances the world by dt seconds with the input polled this frame.
func (w *World) Update(dt float64, raw input.Raw) {
	frame := components.Frame.Get(w.frame)
	frame.DeltaTime = dt
	frame.Raw = raw
	w.ecs.Update()

	if components.Input.Get(w.frame).JustPressed(cfg.ActionReset) {
		log.Printf("[world] reset requested")
		w.Reset()
	}
}

func (w *World) Draw(screen *ebiten.Image) {
	w.ecs.Draw(screen)
}

// Reset rebuilds the world from scratch, keeping the mode and tracing.
func (w *World) Reset() {
	frame := components.Frame.Get(w.frame)
	debug := components.PhysicsDebug.Get(w.frame)
	w.build(frame.Mode, debug.Trace)
	systems.ShowBanner(w.ecs, "reset")
}

// Banner returns the text and opacity of the current banner.
func (w *World) Banner() (string, float32) {
	banner := components.Banner.Get(w.frame)
	return banner.Text, banner.Alpha
}

func (w *World) Mode() components.Mode {
	return components.Frame.Get(w.frame).Mode
}

func (w *World) SetMode(mode components.Mode) {
	systems.SetMode(w.ecs, mode)
}

// SetTrace turns resolver candidate collection on or off.
func (w *World) SetTrace(on bool) {
	debug := components.PhysicsDebug.Get(w.frame)
	debug.Trace = on
	if !on {
		debug.Attempts = nil
	}
}

// Attempts returns the resolver candidates from the last frame. It is empty
// unless tracing is on.
func (w *World) Attempts() []physics.Attempt {
	attempts := components.PhysicsDebug.Get(w.frame).Attempts
	return append([]physics.Attempt(nil), attempts...)
}

// Lost reports whether an enemy defeated the player.
func (w *World) Lost() bool {
	return systems.IsDefeated(w.ecs)
}

// Player returns the first player, or nil when there is none.
func (w *World) Player() *actors.Player {
	entry, ok := tags.Player.First(w.ecs.World)
	if !ok {
		return nil
	}
	return components.Player.Get(entry).Actor
}

func (w *World) Enemies() []*actors.BasicEnemy {
	var out []*actors.BasicEnemy
	components.Enemy.Each(w.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Enemy.Get(e).Actor)
	})
	return out
}

func (w *World) Projectiles() []*actors.Projectile {
	var out []*actors.Projectile
	components.Projectile.Each(w.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Projectile.Get(e).Actor)
	})
	return out
}

func (w *World) Stage() *actors.Stage {
	return components.Stage.Get(components.Stage.MustFirst(w.ecs.World)).Stage
}

// Instances lists every drawable box.
func (w *World) Instances() []systems.Instance {
	return systems.Instances(w.ecs)
}

func (w *World) SpawnPlayer(pos gamemath.Vec) *actors.Player {
	return components.Player.Get(factory.CreatePlayer(w.ecs, pos.X, pos.Y)).Actor
}

func (w *World) SpawnEnemy(pos gamemath.Vec, dir actors.Direction) *actors.BasicEnemy {
	return components.Enemy.Get(factory.CreateEnemy(w.ecs, pos.X, pos.Y, dir)).Actor
}

// SpawnProjectile fires a projectile of the given kind from origin toward
// target that hits enemies and walls.
func (w *World) SpawnProjectile(origin, target gamemath.Vec, kind physics.ProjectileKind) *actors.Projectile {
	entry := factory.CreateProjectile(w.ecs, origin, target, gamemath.Vec{X: 1}, kind, physics.Enemy)
	return components.Projectile.Get(entry).Actor
}
