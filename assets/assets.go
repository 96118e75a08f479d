package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/gamemath"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:stages
	assetFS embed.FS
)

// DefaultStage is the room a new world starts in.
const DefaultStage = "stages/default.tmx"

var (
	ErrNoPlayerSpawn = errors.New("no player spawn")
	ErrUnknownTile   = errors.New("unknown tile material")
	ErrNoTileLayer   = errors.New("no tiles layer")
)

// TileSpawn is one painted cell of a stage file.
type TileSpawn struct {
	Cell actors.Cell
	Type actors.TileType
}

type EnemySpawn struct {
	Pos       gamemath.Vec
	Direction actors.Direction
}

// StageLayout is a stage file converted to world units, one unit per tile.
type StageLayout struct {
	Name    string
	Width   int
	Height  int
	Tiles   []TileSpawn
	Player  gamemath.Vec
	Enemies []EnemySpawn
}

// MustLoadStage loads a stage bundled with the binary.
func MustLoadStage(path string) *StageLayout {
	layout, err := LoadStage(assetFS, path)
	if err != nil {
		panic(err)
	}
	return layout
}

// LoadStage parses a TMX file. Cells come from the "tiles" layer, whose tiles
// carry a "material" property. Spawns come from the PlayerSpawn and
// EnemySpawn object groups; object positions are entity centers.
func LoadStage(fsys fs.FS, path string) (*StageLayout, error) {
	stageMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	layout := &StageLayout{
		Name:   path,
		Width:  stageMap.Width,
		Height: stageMap.Height,
	}

	if err := loadTiles(stageMap, layout); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	tileW := float64(stageMap.TileWidth)
	tileH := float64(stageMap.TileHeight)
	toWorld := func(x, y float64) gamemath.Vec {
		return gamemath.Vec{X: x / tileW, Y: y / tileH}
	}

	playerFound := false
	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				if !playerFound {
					layout.Player = toWorld(o.X, o.Y)
					playerFound = true
				}
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				dir := actors.DirectionRight
				if o.Properties.GetString("direction") == "left" {
					dir = actors.DirectionLeft
				}
				layout.Enemies = append(layout.Enemies, EnemySpawn{
					Pos:       toWorld(o.X, o.Y),
					Direction: dir,
				})
			}
		}
	}
	if !playerFound {
		return nil, fmt.Errorf("load TMX %s: %w", path, ErrNoPlayerSpawn)
	}

	// Sort spawns left-to-right for consistent ordering
	sort.Slice(layout.Enemies, func(i, j int) bool {
		return layout.Enemies[i].Pos.X < layout.Enemies[j].Pos.X
	})

	return layout, nil
}

func loadTiles(stageMap *tiled.Map, layout *StageLayout) error {
	for _, layer := range stageMap.Layers {
		if layer.Name != "tiles" {
			continue
		}
		for y := 0; y < stageMap.Height; y++ {
			for x := 0; x < stageMap.Width; x++ {
				tile := layer.Tiles[y*stageMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var material string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					material = tilesetTile.Properties.GetString("material")
				}
				t, err := tileType(material)
				if err != nil {
					return fmt.Errorf("cell (%d, %d): %w", x, y, err)
				}
				layout.Tiles = append(layout.Tiles, TileSpawn{Cell: actors.Cell{X: x, Y: y}, Type: t})
			}
		}
		return nil
	}
	return ErrNoTileLayer
}

func tileType(material string) (actors.TileType, error) {
	switch material {
	case "dirt":
		return actors.TileDirt, nil
	case "stone":
		return actors.TileStone, nil
	}
	return 0, fmt.Errorf("%q: %w", material, ErrUnknownTile)
}
