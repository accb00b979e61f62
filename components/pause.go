package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused   bool
	StepFrames int // frames to simulate while paused
}

var Pause = donburi.NewComponentType[PauseData]()
