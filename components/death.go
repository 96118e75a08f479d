package components

import "github.com/yohamta/donburi"

// DeathData marks an entity whose actor is dead. UpdateDeaths removes it
// from the world at the end of the frame.
type DeathData struct {
	Cause string
}

var Death = donburi.NewComponentType[DeathData]()
