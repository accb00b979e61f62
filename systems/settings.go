package systems

import (
	"github.com/automoto/glide/archetypes"
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/yohamta/donburi/ecs"
)

var activePresets = cfg.DefaultPresets()

// SetPresets swaps the preset list, e.g. after the override file changed.
// The selected index is kept and wraps onto the new list.
func SetPresets(p *cfg.Presets) {
	if p == nil || len(p.Presets) == 0 {
		return
	}
	activePresets = p
}

func ActivePresets() *cfg.Presets {
	return activePresets
}

// CurrentPreset returns the preset picked in the settings.
func CurrentPreset(e *ecs.ECS) cfg.Preset {
	return activePresets.At(GetOrCreateSettings(e).PresetIndex)
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := archetypes.Settings.Spawn(e)
		index := activePresets.Index(cfg.Motion.DefaultPreset)
		if index < 0 {
			index = 0
		}
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:       cfg.Debug.Enabled,
			PresetIndex: index,
			Tracing:     traceRecorder != nil,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
