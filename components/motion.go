package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MotionData holds velocity in units per second. UpdateMotion integrates it into Transform.
type MotionData struct {
	Vel math.Vec2
}

var Motion = donburi.NewComponentType[MotionData]()
