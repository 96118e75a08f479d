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

// CreateEnemy spawns a patrolling enemy centered at (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, dir actors.Direction) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	actor := actors.NewBasicEnemy(gamemath.Vec{X: x, Y: y}, dir, cfg.Enemy)
	components.Enemy.SetValue(enemy, components.EnemyData{Actor: actor})
	log.Printf("[world] spawned enemy %s at (%.2f, %.2f)", actor.ID(), x, y)
	return enemy
}
