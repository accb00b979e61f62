package archetypes

import (
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Mover = newArchetype(
		tags.Mover,
		components.Mover,
		components.Transform,
		components.Motion,
		components.Actions,
		components.Object,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Waypoint = newArchetype(
		tags.Waypoint,
		components.Waypoint,
		components.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
