package systems

import (
	"log"

	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMode switches between play and edit mode.
func UpdateMode(ecs *ecs.ECS) {
	_, in := GetFrame(ecs)
	switch {
	case in.JustPressed(cfg.ActionPlayMode):
		SetMode(ecs, components.ModePlay)
	case in.JustPressed(cfg.ActionEditMode):
		SetMode(ecs, components.ModeEdit)
	}
}

func SetMode(ecs *ecs.ECS, mode components.Mode) {
	frame, _ := GetFrame(ecs)
	if frame.Mode == mode {
		return
	}
	frame.Mode = mode
	ShowBanner(ecs, mode.String()+" mode")
	log.Printf("[world] switched to %s mode", mode)
}

// WithPlayMode wraps a system so it only runs while playing.
func WithPlayMode(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		frame, _ := GetFrame(ecs)
		if frame.Mode != components.ModePlay {
			return
		}
		system(ecs)
	}
}
