package systems

import (
	"image/color"

	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld fills the background and draws every instance as a flat box.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
	for _, inst := range Instances(ecs) {
		fillBox(screen, inst.Box, colorFor(inst.Type))
	}
}

func colorFor(t physics.ObjType) color.RGBA {
	switch t.Kind {
	case physics.KindPlayer:
		return cfg.Colors.Player
	case physics.KindEnemy:
		return cfg.Colors.Enemy
	case physics.KindProjectile:
		if t.Projectile == physics.ProjectileSlowing {
			return cfg.Colors.SlowingProjectile
		}
		return cfg.Colors.Projectile
	default:
		return cfg.Colors.Wall
	}
}

// fillBox draws b in screen pixels.
func fillBox(screen *ebiten.Image, b gamemath.BoundingBox, c color.Color) {
	ppu := cfg.C.PixelsPerUnit
	vector.FillRect(screen,
		float32(b.Left()*ppu), float32(b.Top()*ppu),
		float32(b.Width*ppu), float32(b.Height*ppu),
		c, false)
}

// strokeBox draws a one pixel outline of b.
func strokeBox(screen *ebiten.Image, b gamemath.BoundingBox, c color.Color) {
	ppu := cfg.C.PixelsPerUnit
	x, y := float32(b.Left()*ppu), float32(b.Top()*ppu)
	w, h := float32(b.Width*ppu), float32(b.Height*ppu)
	vector.FillRect(screen, x, y, w, 1, c, false)
	vector.FillRect(screen, x, y+h-1, w, 1, c, false)
	vector.FillRect(screen, x, y, 1, h, c, false)
	vector.FillRect(screen, x+w-1, y, 1, h, c, false)
}
