package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

// Preset names an easing curve and a duration for EaseTo actions.
type Preset struct {
	Name       string  `yaml:"name"`
	Easing     string  `yaml:"easing"`
	DurationMs float64 `yaml:"durationMs"`
}

// Presets is the ordered list shown in the preset picker.
type Presets struct {
	Presets []Preset `yaml:"presets"`
}

// ParsePresets decodes and validates YAML preset data. When known is
// non-empty every preset's easing must be one of its names.
func ParsePresets(data []byte, known ...string) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if err := p.Validate(known...); err != nil {
		return nil, fmt.Errorf("invalid presets: %w", err)
	}
	return &p, nil
}

// LoadPresets reads a YAML preset file from disk.
func LoadPresets(path string, known ...string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	return ParsePresets(data, known...)
}

// DefaultPresets returns the embedded presets.
func DefaultPresets() *Presets {
	p, err := ParsePresets(defaultPresetsYAML)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks names are present and unique and durations are not negative.
func (p *Presets) Validate(known ...string) error {
	if len(p.Presets) == 0 {
		return errors.New("no presets defined")
	}
	seen := make(map[string]struct{}, len(p.Presets))
	for i, preset := range p.Presets {
		if preset.Name == "" {
			return fmt.Errorf("preset %d: missing name", i)
		}
		if _, dup := seen[preset.Name]; dup {
			return fmt.Errorf("preset %q: duplicate name", preset.Name)
		}
		seen[preset.Name] = struct{}{}

		if preset.Easing == "" {
			return fmt.Errorf("preset %q: missing easing", preset.Name)
		}
		if len(known) > 0 && !slices.Contains(known, preset.Easing) {
			return fmt.Errorf("preset %q: unknown easing %q", preset.Name, preset.Easing)
		}
		if preset.DurationMs < 0 {
			return fmt.Errorf("preset %q: negative duration %v", preset.Name, preset.DurationMs)
		}
	}
	return nil
}

// Index returns the position of the named preset, or -1.
func (p *Presets) Index(name string) int {
	return slices.IndexFunc(p.Presets, func(preset Preset) bool {
		return preset.Name == name
	})
}

// Find returns the named preset.
func (p *Presets) Find(name string) (Preset, bool) {
	if i := p.Index(name); i >= 0 {
		return p.Presets[i], true
	}
	return Preset{}, false
}

// At returns the preset at i, wrapping around the list.
func (p *Presets) At(i int) Preset {
	n := len(p.Presets)
	return p.Presets[((i%n)+n)%n]
}
