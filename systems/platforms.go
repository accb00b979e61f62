package systems

import (
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlatforms(ecs *ecs.ECS) {
	StepPlatforms(ecs.World, cfg.Motion.FrameMs)
}

// StepPlatforms advances the tween sequence of each floating platform and
// moves its collision object to the tweened height.
func StepPlatforms(world donburi.World, deltaMs float64) {
	components.Tween.Each(world, func(e *donburi.Entry) {
		seq := components.Tween.Get(e).Seq
		if seq == nil {
			return
		}
		y, _, _ := seq.Update(float32(deltaMs / 1000))

		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e)
		obj.Y = float64(y)
		obj.Update()
	})
}
