package systems

import (
	"log"

	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/physics"
	"github.com/automoto/dashjam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type defeat struct {
	player *donburi.Entry
	by     physics.ID
}

// UpdateCombat applies the stomp rule to every player an enemy touched this
// frame. A stomp kills the enemy and bounces the player; any other touch
// defeats the player.
func UpdateCombat(ecs *ecs.ECS) {
	players := make(map[physics.ID]*donburi.Entry)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players[components.Player.Get(e).Actor.ID()] = e
	})

	var defeats []defeat
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e).Actor
		for _, id := range enemy.PlayerContacts() {
			if enemy.Dead() {
				return
			}
			playerEntry, ok := players[id]
			if !ok {
				continue
			}
			player := components.Player.Get(playerEntry).Actor

			// judged on pre-move boxes so a deep landing still counts
			if actors.Stomp(player.FrameStartBox(), enemy.FrameStartBox()) {
				enemy.Kill()
				player.Bounce()
				log.Printf("[combat] player %s stomped enemy %s", player.ID(), enemy.ID())
				continue
			}
			defeats = append(defeats, defeat{player: playerEntry, by: enemy.ID()})
		}
	})

	for _, d := range defeats {
		if d.player.HasComponent(components.Defeat) {
			continue
		}
		donburi.Add(d.player, components.Defeat, &components.DefeatData{By: d.by})
		log.Printf("[combat] player %s lost to enemy %s", components.Player.Get(d.player).Actor.ID(), d.by)
	}
}

// IsDefeated reports whether any player has been defeated.
func IsDefeated(ecs *ecs.ECS) bool {
	defeated := false
	components.Defeat.Each(ecs.World, func(*donburi.Entry) {
		defeated = true
	})
	return defeated
}
