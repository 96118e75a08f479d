package systems

import (
	"github.com/automoto/dashjam/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const bannerDuration = 1.2

// ShowBanner replaces the current banner and restarts its fade.
func ShowBanner(ecs *ecs.ECS, text string) {
	banner := components.Banner.Get(components.Banner.MustFirst(ecs.World))
	banner.Text = text
	banner.Alpha = 1
	banner.Fade = gween.New(1, 0, bannerDuration, ease.InQuad)
}

// UpdateBanner advances the banner fade and clears it once finished.
func UpdateBanner(ecs *ecs.ECS) {
	frame, _ := GetFrame(ecs)
	banner := components.Banner.Get(components.Banner.MustFirst(ecs.World))
	if banner.Fade == nil {
		return
	}

	alpha, done := banner.Fade.Update(float32(frame.DeltaTime))
	banner.Alpha = alpha
	if done {
		banner.Text = ""
		banner.Alpha = 0
		banner.Fade = nil
	}
}
