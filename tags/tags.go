package tags

import "github.com/yohamta/donburi"

var (
	Mover            = donburi.NewTag().SetName("Mover")
	Solid            = donburi.NewTag().SetName("Solid")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Waypoint         = donburi.NewTag().SetName("Waypoint")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvMover = "mover"
)
