package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/glide/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Preset string `json:"preset"`
	Debug  bool   `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "glide",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSavedSettings snapshots the Settings component.
func CurrentSavedSettings(e *ecs.ECS) *SavedSettings {
	settings := GetOrCreateSettings(e)
	return &SavedSettings{
		Preset: activePresets.At(settings.PresetIndex).Name,
		Debug:  settings.Debug,
	}
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(e *ecs.ECS) {
	_ = SaveSettings(CurrentSavedSettings(e))
}

// ApplySavedSettings copies loaded settings into the Settings component.
// A preset that no longer exists leaves the selection alone.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug
	if i := activePresets.Index(saved.Preset); i >= 0 {
		settings.PresetIndex = i
	}
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Enabled = saved.Debug
	if saved.Preset != "" {
		cfg.Motion.DefaultPreset = saved.Preset
	}
}
