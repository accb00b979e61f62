package systems

import (
	"github.com/automoto/glide/assets"
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SpawnLevel creates the collision space and every entity laid out in level.
func SpawnLevel(e *ecs.ECS, level *assets.Level) {
	width, height := level.Width, level.Height
	if width == 0 || height == 0 {
		width, height = cfg.C.Width, cfg.C.Height
	}
	spaceEntry := factory.CreateSpace(e, width, height)
	space := components.Space.Get(spaceEntry).Space

	for _, s := range level.Solids {
		factory.CreateSolid(e, space, s.X, s.Y, s.Width, s.Height)
	}
	for _, p := range level.Platforms {
		factory.CreateFloatingPlatform(e, space, p.X, p.Y, p.Width, p.Height, p.Travel, p.Seconds)
	}
	for _, m := range level.Movers {
		factory.CreateMover(e, space, m.Name, m.Preset, m.X, m.Y)
	}
	for _, w := range level.Waypoints {
		factory.CreateWaypoint(e, w.Name, w.Mover, w.X, w.Y)
	}
}
