package components

import "github.com/yohamta/donburi"

// Action is a time-based behavior driven once per frame by the action system.
type Action interface {
	Update(deltaMs float64)
	IsComplete(target *donburi.Entry) bool
	Reset()
	Stop()
}

// ActionData holds the single running action of an entity.
type ActionData struct {
	Current   Action
	Last      Action // most recently issued action, kept for replay
	Completed int    // number of actions evicted after completing
}

var Actions = donburi.NewComponentType[ActionData]()
