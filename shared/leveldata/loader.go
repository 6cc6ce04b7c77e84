package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("no player spawn")

// Layer and object group names read from TMX files
const (
	TileLayer         = "wg-tiles"
	GroupPlayerSpawn  = "PlayerSpawn"
	GroupWalkers      = "Walkers"
	GroupBouncers     = "Bouncers"
	GroupPlatforms    = "Platforms"
	GroupButtons      = "Buttons"
	GroupDashEnablers = "DashEnablers"
	GroupDeadZones    = "DeadZones"
	GroupFinishLines  = "FinishLines"
	GroupAnchorDowns  = "AnchorDowns"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	level.Solids = solidTiles(levelMap)

	var spawns []Point
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case GroupPlayerSpawn:
				spawns = append(spawns, Point{X: o.X, Y: o.Y})
			case GroupWalkers:
				level.Walkers = append(level.Walkers, actor(o))
			case GroupBouncers:
				level.Bouncers = append(level.Bouncers, actor(o))
			case GroupPlatforms:
				level.Platforms = append(level.Platforms, Platform{
					Rect:     r,
					MoveX:    o.Properties.GetFloat("moveX"),
					MoveY:    o.Properties.GetFloat("moveY"),
					Duration: o.Properties.GetFloat("duration"),
					Solid:    o.Properties.GetBool("solid"),
				})
			case GroupButtons:
				level.Buttons = append(level.Buttons, Button{
					Rect:    r,
					Name:    o.Name,
					Pressed: o.Properties.GetBool("pressed"),
				})
			case GroupDashEnablers:
				enable := true
				if o.Properties.GetString("enable") != "" {
					enable = o.Properties.GetBool("enable")
				}
				level.DashEnablers = append(level.DashEnablers, DashEnabler{Rect: r, Enable: enable})
			case GroupDeadZones:
				level.DeadZones = append(level.DeadZones, r)
			case GroupFinishLines:
				level.FinishLines = append(level.FinishLines, FinishLine{Rect: r, Level: o.Properties.GetString("level")})
			case GroupAnchorDowns:
				level.AnchorDowns = append(level.AnchorDowns, AnchorDown{Rect: r, DownForce: o.Properties.GetFloat("downForce")})
			}
		}
	}

	if len(spawns) == 0 {
		return nil, fmt.Errorf("level %s: %w", tmxPath, ErrNoSpawn)
	}
	// Leftmost spawn wins
	sort.SliceStable(spawns, func(i, j int) bool {
		return spawns[i].X < spawns[j].X
	})
	level.Spawn = spawns[0]

	return level, nil
}

// solidTiles reads the wg-tiles layer. A "slope" tile property marks ramps.
func solidTiles(levelMap *tiled.Map) []SolidRect {
	var solids []SolidRect
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slopeType string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString("slope")
				}

				solids = append(solids, SolidRect{
					Rect:      Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH},
					SlopeType: slopeType,
				})
			}
		}
		break
	}
	return solids
}

func actor(o *tiled.Object) Actor {
	a := Actor{Name: o.Name, X: o.X, Y: o.Y}
	if o.Properties.GetString("respawnX") != "" || o.Properties.GetString("respawnY") != "" {
		a.Respawn = &Point{
			X: o.Properties.GetFloat("respawnX"),
			Y: o.Properties.GetFloat("respawnY"),
		}
	}
	return a
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		level, err := LoadLevel(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
