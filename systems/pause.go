package systems

import (
	"github.com/automoto/glide/archetypes"
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause. While paused, the step command queues a
// single simulated frame.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetCommand(input, cfg.CommandPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.StepFrames = 0
	}
	if pause.IsPaused && GetCommand(input, cfg.CommandStep).JustPressed {
		pause.StepFrames++
	}
}

// ConsumePauseStep spends one queued frame.
// Must run AFTER every system wrapped with WithGameplayChecks.
func ConsumePauseStep(ecs *ecs.ECS) {
	if pause := GetOrCreatePause(ecs); pause.StepFrames > 0 {
		pause.StepFrames--
	}
}

// DrawPause dims the screen while paused.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	label := "paused  p: resume  .: step"
	// Approximate width for the regular font
	x := (int(width) - len(label)*6) / 2
	text.Draw(screen, label, fonts.Regular.Get(), x, int(height)/2, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused, unless a
// step frame is queued.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && pause.StepFrames == 0 {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		archetypes.Pause.Spawn(ecs)
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
