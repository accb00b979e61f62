package systems

import (
	"testing"

	"github.com/automoto/glide/actions"
	cfg "github.com/automoto/glide/config"
)

func TestLoadSettingsWithoutPersistence(t *testing.T) {
	saved, err := LoadSettings()
	if saved != nil || err != nil {
		t.Errorf("expected nil, nil before InitPersistence, got %v, %v", saved, err)
	}
	if err := SaveSettings(&SavedSettings{Preset: "dash"}); err != nil {
		t.Errorf("expected save to be a no-op, got %v", err)
	}
}

func TestDecodeSettings(t *testing.T) {
	saved, err := decodeSettings([]byte(`{"preset":"glide","debug":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if saved.Preset != "glide" || !saved.Debug {
		t.Errorf("unexpected settings %+v", saved)
	}

	if _, err := decodeSettings([]byte(`{"preset":`)); err == nil {
		t.Error("expected error for truncated data")
	}
}

func TestApplySavedSettings(t *testing.T) {
	e := newTestECS(t)

	ApplySavedSettings(e, &SavedSettings{Preset: "dash", Debug: true})
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		t.Error("expected debug on")
	}
	if got := CurrentPreset(e).Name; got != "dash" {
		t.Errorf("expected preset dash, got %s", got)
	}

	ApplySavedSettings(e, &SavedSettings{Preset: "removed"})
	if got := CurrentPreset(e).Name; got != "dash" {
		t.Errorf("expected unknown preset to keep dash, got %s", got)
	}

	ApplySavedSettings(e, nil)
	if got := CurrentSavedSettings(e); got.Preset != "dash" || got.Debug {
		t.Errorf("unexpected snapshot %+v", got)
	}
}

func TestSelectPreset(t *testing.T) {
	e := newTestECS(t)
	SelectPreset(e, 0)
	if got := GetOrCreateSettings(e).PresetIndex; got != 0 {
		t.Errorf("expected index 0, got %d", got)
	}
	SelectPreset(e, len(ActivePresets().Presets))
	if got := GetOrCreateSettings(e).PresetIndex; got != 0 {
		t.Errorf("expected out of range index to be ignored, got %d", got)
	}
}

func TestSetPresets(t *testing.T) {
	old := ActivePresets()
	defer SetPresets(old)

	e := newTestECS(t)
	GetOrCreateSettings(e).PresetIndex = 5

	SetPresets(&cfg.Presets{Presets: []cfg.Preset{
		{Name: "a", Easing: "linear", DurationMs: 100},
		{Name: "b", Easing: "inQuad", DurationMs: 200},
	}})
	if got := CurrentPreset(e).Name; got != "b" {
		t.Errorf("expected index 5 to wrap to b, got %s", got)
	}

	SetPresets(nil)
	if len(ActivePresets().Presets) != 2 {
		t.Error("expected nil presets to be ignored")
	}
}

func TestDefaultPresetsResolve(t *testing.T) {
	for _, p := range cfg.DefaultPresets().Presets {
		if _, err := actions.Lookup(p.Easing); err != nil {
			t.Errorf("preset %q: %v", p.Name, err)
		}
	}
	if cfg.DefaultPresets().Index(cfg.Motion.DefaultPreset) < 0 {
		t.Errorf("default preset %q is not defined", cfg.Motion.DefaultPreset)
	}
}
