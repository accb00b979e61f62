package systems

import (
	"log"

	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input component, then carries out
// the commands and mouse clicks of this frame.
// Must run BEFORE UpdatePause and UpdateActions in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollInput(input)

	for i, key := range cfg.Input.PresetKeys {
		if inpututil.IsKeyJustPressed(key) {
			SelectPreset(ecs, i)
		}
	}

	ApplyCommands(ecs, input)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if y >= PanelTop() {
			return // the preset picker handles its own clicks
		}
		MoveSelectedTo(ecs, float64(x), float64(y))
	}
}

func pollInput(input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.CommandCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for commandID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[commandID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[commandID] = true
				}
			}
		}
	}
}

// ApplyCommands reacts to the commands pressed this frame.
func ApplyCommands(ecs *ecs.ECS, input *components.InputData) {
	settings := GetOrCreateSettings(ecs)

	if GetCommand(input, cfg.CommandDebug).JustPressed {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(ecs)
	}
	if GetCommand(input, cfg.CommandTrace).JustPressed && traceRecorder != nil {
		settings.Tracing = !settings.Tracing
	}
	if GetCommand(input, cfg.CommandNextMover).JustPressed {
		settings.Selected++
	}
	if GetCommand(input, cfg.CommandPrevMover).JustPressed {
		settings.Selected--
	}
	if GetCommand(input, cfg.CommandWaypoints).JustPressed {
		if _, err := SendToWaypoints(ecs); err != nil {
			log.Printf("Warning: Could not send movers to waypoints: %v", err)
		}
	}

	selected := SelectedMover(ecs)
	if selected == nil {
		return
	}
	if GetCommand(input, cfg.CommandStop).JustPressed {
		StopCurrent(selected)
	}
	if GetCommand(input, cfg.CommandReplay).JustPressed {
		ReplayLast(selected)
	}
}

// MoveSelectedTo eases the selected mover so its centre lands on (x, y)
// using the picked preset.
func MoveSelectedTo(ecs *ecs.ECS, x, y float64) {
	selected := SelectedMover(ecs)
	if selected == nil {
		return
	}
	tx := x - cfg.Motion.MoverWidth/2
	ty := y - cfg.Motion.MoverHeight/2
	if err := IssueEaseTo(selected, tx, ty, CurrentPreset(ecs)); err != nil {
		log.Printf("Warning: Could not move %v: %v", selected.Entity(), err)
	}
}

// SelectPreset picks the preset at index if it exists and persists it.
func SelectPreset(ecs *ecs.ECS, index int) {
	if index < 0 || index >= len(activePresets.Presets) {
		return
	}
	settings := GetOrCreateSettings(ecs)
	if settings.PresetIndex == index {
		return
	}
	settings.PresetIndex = index
	SaveCurrentSettings(ecs)
}

// PanelTop is the screen y where the preset picker starts.
func PanelTop() int {
	rows := (len(activePresets.Presets) + cfg.Panel.MaxPerRow - 1) / cfg.Panel.MaxPerRow
	return cfg.C.Height - rows*(cfg.Panel.ButtonHeight+cfg.Panel.Spacing) - cfg.Panel.Spacing
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetCommand returns the full CommandState for a command ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetCommand(input *components.InputData, id cfg.CommandID) components.CommandState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.CommandState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
