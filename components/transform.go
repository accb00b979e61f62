package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is the authoritative world position of an entity (top-left corner).
type TransformData struct {
	Pos math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
