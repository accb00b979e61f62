package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the collision space. Kept behind a pointer since resolv
// objects reference their space directly.
type SpaceData struct {
	Space *resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
