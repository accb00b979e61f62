package config

import "github.com/hajimehoshi/ebiten/v2"

// CommandID represents a logical demo command
type CommandID int

const (
	CommandNone CommandID = iota
	CommandNextMover
	CommandPrevMover
	CommandStop
	CommandReplay
	CommandWaypoints
	CommandDebug
	CommandTrace
	CommandPause
	CommandStep
	CommandCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for a command
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[CommandID]InputBinding
	// Number keys pick presets by position
	PresetKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[CommandID]InputBinding{
			CommandNextMover: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// RB / R1
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			CommandPrevMover: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				// LB / L1
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			CommandStop: {
				Keys: []ebiten.Key{ebiten.KeyS},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			CommandReplay: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			CommandWaypoints: {
				Keys: []ebiten.Key{ebiten.KeyW},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			CommandDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			CommandTrace: {
				Keys: []ebiten.Key{ebiten.KeyT},
			},
			CommandPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			CommandStep: {
				Keys: []ebiten.Key{ebiten.KeyPeriod},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
		},
		PresetKeys: []ebiten.Key{
			ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
			ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
			ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
		},
	}
}
