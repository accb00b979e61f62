package factory

import (
	"github.com/automoto/glide/archetypes"
	"github.com/automoto/glide/components"
	"github.com/automoto/glide/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSolid(ecs *ecs.ECS, space *resolv.Space, x, y, w, h float64) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)
	object := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	object.Data = solid
	space.Add(object)
	components.Object.SetValue(solid, components.ObjectData{Object: object})

	return solid
}

// CreateFloatingPlatform spawns a solid that rises by travel pixels and comes
// back, each leg taking seconds, forever.
func CreateFloatingPlatform(ecs *ecs.ECS, space *resolv.Space, x, y, w, h, travel, seconds float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	object := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	object.Data = platform
	space.Add(object)
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), float32(seconds), ease.Linear),
		gween.New(float32(y-travel), float32(y), float32(seconds), ease.Linear),
	)
	tw.SetLoop(-1)
	components.Tween.SetValue(platform, components.TweenData{Seq: tw})

	return platform
}
