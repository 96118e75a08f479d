package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/dashjam/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is what the game loop drives each tick.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// maxFrameTime bounds the step after a stall such as a dragged window.
const maxFrameTime = 0.25

type PlatformerScene struct {
	world    *world.World
	lastTick time.Time
	once     sync.Once
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	now := time.Now()
	dt := now.Sub(ps.lastTick).Seconds()
	ps.lastTick = now
	if dt > maxFrameTime {
		dt = maxFrameTime
	}

	ps.world.Update(dt, pollInput())

	if ps.world.Lost() {
		log.Printf("[scene] player defeated, restarting")
		ps.world.Reset()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.world == nil {
		return
	}
	ps.world.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.world = world.New()
	ps.lastTick = time.Now()
}
