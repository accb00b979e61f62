package factory

import (
	"github.com/automoto/glide/archetypes"
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cfg.Motion.CellSize, cfg.Motion.CellSize),
	})
	return space
}
