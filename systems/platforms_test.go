package systems

import (
	"testing"

	"github.com/automoto/glide/components"
	"github.com/automoto/glide/systems/factory"
)

func TestStepPlatforms(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreateFloatingPlatform(e, spaceOf(e).Space, 32, 100, 64, 12, 50, 1)

	StepPlatforms(e.World, 500)
	if y := components.Object.Get(p).Y; y != 75 {
		t.Errorf("expected platform at y=75 halfway up, got %v", y)
	}
	if x := components.Object.Get(p).X; x != 32 {
		t.Errorf("expected x to stay 32, got %v", x)
	}
}
