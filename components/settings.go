package components

import "github.com/yohamta/donburi"

// SettingsData stores demo-wide state (singleton component)
type SettingsData struct {
	Debug       bool
	PresetIndex int
	Selected    int // index of the selected mover, in spawn order
	Tracing     bool
}

var Settings = donburi.NewComponentType[SettingsData]()
