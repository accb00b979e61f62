package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/automoto/glide/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

type Level struct {
	Solids    []Rect
	Platforms []PlatformSpawn
	Movers    []MoverSpawn
	Waypoints []WaypointSpawn
	Name      string
	Width     int
	Height    int
}

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

type PlatformSpawn struct {
	Rect
	Travel  float64 // pixels risen before coming back
	Seconds float64 // duration of one leg
}

type MoverSpawn struct {
	X, Y   float64
	Name   string
	Preset string // may be empty, the picker's preset is used then
}

type WaypointSpawn struct {
	X, Y  float64
	Name  string
	Mover string
}

// WaypointFor returns the first waypoint assigned to the named mover.
func (l *Level) WaypointFor(mover string) (WaypointSpawn, bool) {
	for _, w := range l.Waypoints {
		if w.Mover == mover {
			return w, true
		}
	}
	return WaypointSpawn{}, false
}

// MustLoadLevels loads every embedded .tmx level, sorted by path.
func MustLoadLevels() []*Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []*Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levels = append(levels, MustLoadLevel(filepath.Join("levels", entry.Name())))
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}
	return levels
}

func MustLoadLevel(levelPath string) *Level {
	level, err := LoadLevel(assetFS, levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses a Tiled map from fsys. Layout comes from the object
// groups Solids, FloatingPlatforms, Movers and Waypoints; tile layers are
// ignored.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "FloatingPlatforms":
			for _, o := range og.Objects {
				travel := o.Properties.GetFloat("travel")
				if travel == 0 {
					travel = config.Platform.Travel
				}
				seconds := o.Properties.GetFloat("seconds")
				if seconds <= 0 {
					seconds = config.Platform.Seconds
				}
				level.Platforms = append(level.Platforms, PlatformSpawn{
					Rect:    Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Travel:  travel,
					Seconds: seconds,
				})
			}
		case "Movers":
			for _, o := range og.Objects {
				if o.Name == "" {
					return nil, fmt.Errorf("level %s: mover object %d has no name", levelPath, o.ID)
				}
				level.Movers = append(level.Movers, MoverSpawn{
					X:      o.X,
					Y:      o.Y,
					Name:   o.Name,
					Preset: o.Properties.GetString("preset"),
				})
			}
		case "Waypoints":
			for _, o := range og.Objects {
				level.Waypoints = append(level.Waypoints, WaypointSpawn{
					X:     o.X,
					Y:     o.Y,
					Name:  o.Name,
					Mover: o.Properties.GetString("mover"),
				})
			}
		}
	}

	// Selection order follows the map, top to bottom then left to right.
	sort.SliceStable(level.Movers, func(i, j int) bool {
		if level.Movers[i].Y != level.Movers[j].Y {
			return level.Movers[i].Y < level.Movers[j].Y
		}
		return level.Movers[i].X < level.Movers[j].X
	})

	names := make(map[string]struct{}, len(level.Movers))
	for _, m := range level.Movers {
		if _, dup := names[m.Name]; dup {
			return nil, fmt.Errorf("level %s: duplicate mover %q", levelPath, m.Name)
		}
		names[m.Name] = struct{}{}
	}
	for _, w := range level.Waypoints {
		if w.Mover == "" {
			continue
		}
		if _, ok := names[w.Mover]; !ok {
			return nil, fmt.Errorf("level %s: waypoint %q references unknown mover %q", levelPath, w.Name, w.Mover)
		}
	}

	return level, nil
}
