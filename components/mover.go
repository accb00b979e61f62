package components

import "github.com/yohamta/donburi"

type MoverData struct {
	Name   string
	Preset string // easing preset used when the mover is sent somewhere
}

var Mover = donburi.NewComponentType[MoverData]()

// WaypointData marks a destination placed in the level.
type WaypointData struct {
	Name  string
	Mover string // name of the mover this waypoint belongs to, empty for any
}

var Waypoint = donburi.NewComponentType[WaypointData]()
