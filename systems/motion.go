package systems

import (
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateMotion(ecs *ecs.ECS) {
	StepMotion(ecs.World, cfg.Motion.FrameMs)
}

// StepMotion integrates velocity (units per second) into position. Entities
// with a collision object are moved through the space one axis at a time and
// stop flush against solids.
func StepMotion(world donburi.World, deltaMs float64) {
	seconds := deltaMs / 1000
	components.Motion.Each(world, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		tx := components.Transform.Get(e)
		vel := components.Motion.Get(e).Vel
		dx, dy := vel.X*seconds, vel.Y*seconds

		if !e.HasComponent(components.Object) {
			tx.Pos.X += dx
			tx.Pos.Y += dy
			return
		}

		obj := components.Object.Get(e).Object
		// Actions may have written the transform directly, so it leads.
		obj.X, obj.Y = tx.Pos.X, tx.Pos.Y

		obj.X += resolveAxis(obj, dx, 0)
		obj.Y += resolveAxis(obj, 0, dy)
		obj.Update()

		tx.Pos = math.Vec2{X: obj.X, Y: obj.Y}
	})
}

// resolveAxis returns how far obj may move along a single axis before it
// touches a solid.
func resolveAxis(obj *resolv.Object, dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return dx + dy
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return dx + dy
	}
	contact := check.ContactWithObject(solids[0])
	if dx != 0 {
		return contact.X()
	}
	return contact.Y()
}
