package factory

import (
	"log"

	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/archetypes"
	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player centered at (x, y) using the global player tuning.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	actor := actors.NewPlayer(gamemath.Vec{X: x, Y: y}, cfg.Player)
	components.Player.SetValue(player, components.PlayerData{Actor: actor})
	log.Printf("[world] spawned player %s at (%.2f, %.2f)", actor.ID(), x, y)
	return player
}
