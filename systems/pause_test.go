package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestWithPauseCheck(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	runs := 0
	system := WithGameplayChecks(func(*ecs.ECS) { runs++ })

	system(e)
	if runs != 1 {
		t.Fatalf("expected system to run unpaused, got %d runs", runs)
	}

	pause := GetOrCreatePause(e)
	pause.IsPaused = true
	system(e)
	if runs != 1 {
		t.Errorf("expected paused system to be skipped, got %d runs", runs)
	}

	pause.StepFrames = 1
	system(e)
	ConsumePauseStep(e)
	system(e)
	if runs != 2 {
		t.Errorf("expected exactly one stepped run, got %d runs", runs)
	}
	if pause.StepFrames != 0 {
		t.Errorf("expected step consumed, got %d", pause.StepFrames)
	}

	ConsumePauseStep(e)
	if pause.StepFrames != 0 {
		t.Errorf("expected step count to stay at zero, got %d", pause.StepFrames)
	}
}
