package factory

import (
	"log"

	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/archetypes"
	"github.com/automoto/dashjam/assets"
	"github.com/automoto/dashjam/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage spawns the stage entity with an empty tile grid.
func CreateStage(ecs *ecs.ECS) *donburi.Entry {
	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{Stage: actors.NewStage()})
	components.Editor.SetValue(stage, components.EditorData{Brush: actors.TileDirt})
	return stage
}

// CreateDefaultStage builds the bundled starting room.
func CreateDefaultStage(ecs *ecs.ECS) *donburi.Entry {
	return CreateStageFromLayout(ecs, assets.MustLoadStage(assets.DefaultStage))
}

// CreateStageFromLayout paints every tile of layout and spawns its player and
// enemies.
func CreateStageFromLayout(ecs *ecs.ECS, layout *assets.StageLayout) *donburi.Entry {
	entry := CreateStage(ecs)
	stage := components.Stage.Get(entry).Stage

	for _, t := range layout.Tiles {
		stage.Paint(t.Cell, t.Type)
	}
	log.Printf("[stage] loaded %s: %d tiles", layout.Name, stage.Len())

	CreatePlayer(ecs, layout.Player.X, layout.Player.Y)
	for _, e := range layout.Enemies {
		CreateEnemy(ecs, e.Pos.X, e.Pos.Y, e.Direction)
	}
	return entry
}
