package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// DrawHUD prints the mode line, the trace counter and the fading banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	frame, _ := GetFrame(ecs)
	debug := components.PhysicsDebug.Get(components.PhysicsDebug.MustFirst(ecs.World))
	banner := components.Banner.Get(components.Banner.MustFirst(ecs.World))

	regular := fonts.Regular.Get()
	line := fmt.Sprintf("%s  [1] play  [2] edit  [R] reset", frame.Mode)
	text.Draw(screen, line, regular, hudMargin, hudMargin+12, cfg.Colors.Text)

	if debug.Trace {
		msg := fmt.Sprintf("attempts: %d", len(debug.Attempts))
		text.Draw(screen, msg, fonts.Mono.Get(), hudMargin, hudMargin+28, cfg.Colors.Text)
	}

	if banner.Text == "" || banner.Alpha <= 0 {
		return
	}
	face := fonts.Banner.Get()
	bounds := text.BoundString(face, banner.Text)
	x := (cfg.C.Width - bounds.Dx()) / 2
	y := cfg.C.Height / 3
	text.Draw(screen, banner.Text, face, x, y, fade(cfg.Colors.Text, banner.Alpha))
}

// fade scales c's alpha by a in [0, 1].
func fade(c color.RGBA, a float32) color.RGBA {
	a = min(max(a, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
