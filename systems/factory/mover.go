package factory

import (
	"github.com/automoto/glide/archetypes"
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateMover(ecs *ecs.ECS, space *resolv.Space, name, preset string, x, y float64) *donburi.Entry {
	mover := archetypes.Mover.Spawn(ecs)

	object := resolv.NewObject(x, y, cfg.Motion.MoverWidth, cfg.Motion.MoverHeight, tags.ResolvMover)
	object.Data = mover
	space.Add(object)

	components.Object.SetValue(mover, components.ObjectData{Object: object})
	components.Transform.SetValue(mover, components.TransformData{Pos: math.Vec2{X: x, Y: y}})
	components.Mover.SetValue(mover, components.MoverData{Name: name, Preset: preset})

	return mover
}

func CreateWaypoint(ecs *ecs.ECS, name, mover string, x, y float64) *donburi.Entry {
	waypoint := archetypes.Waypoint.Spawn(ecs)
	components.Waypoint.SetValue(waypoint, components.WaypointData{Name: name, Mover: mover})
	components.Transform.SetValue(waypoint, components.TransformData{Pos: math.Vec2{X: x, Y: y}})
	return waypoint
}
