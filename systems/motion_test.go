package systems

import (
	"testing"

	"github.com/automoto/glide/components"
	"github.com/automoto/glide/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestStepMotion_PlainIntegration(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Entry(world.Create(components.Transform, components.Motion))
	components.Transform.SetValue(e, components.TransformData{Pos: math.Vec2{X: 10, Y: 10}})
	components.Motion.SetValue(e, components.MotionData{Vel: math.Vec2{X: 60, Y: -30}})

	StepMotion(world, 500)
	if p := components.Transform.Get(e).Pos; p != (math.Vec2{X: 40, Y: -5}) {
		t.Errorf("expected (40,-5), got %+v", p)
	}
}

func TestStepMotion_FreeObject(t *testing.T) {
	e := newTestECS(t)
	m := spawnMover(t, e, "a", 0, 0)
	components.Motion.Get(m).Vel = math.Vec2{X: 20, Y: 40}

	StepMotion(e.World, 500)
	if p := components.Transform.Get(m).Pos; p != (math.Vec2{X: 10, Y: 20}) {
		t.Errorf("expected (10,20), got %+v", p)
	}
	if obj := components.Object.Get(m); obj.X != 10 || obj.Y != 20 {
		t.Errorf("expected object to follow, got (%v,%v)", obj.X, obj.Y)
	}
}

func TestStepMotion_BlockedBySolids(t *testing.T) {
	tests := []struct {
		name  string
		solid [4]float64
		vel   math.Vec2
	}{
		{"wall", [4]float64{40, 0, 16, 16}, math.Vec2{X: 60}},
		{"floor", [4]float64{0, 40, 100, 16}, math.Vec2{Y: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			factory.CreateSolid(e, spaceOf(e).Space, tt.solid[0], tt.solid[1], tt.solid[2], tt.solid[3])
			m := spawnMover(t, e, "a", 0, 0)
			components.Motion.Get(m).Vel = tt.vel

			// 30 units of travel would overlap the solid.
			StepMotion(e.World, 500)

			p := components.Transform.Get(m).Pos
			if tt.vel.X != 0 && (p.X <= 0 || p.X+16 > tt.solid[0]) {
				t.Errorf("expected to stop before x=%v, got %v", tt.solid[0], p.X)
			}
			if tt.vel.Y != 0 && (p.Y <= 0 || p.Y+16 > tt.solid[1]) {
				t.Errorf("expected to stop above y=%v, got %v", tt.solid[1], p.Y)
			}
			obj := components.Object.Get(m)
			if obj.X != p.X || obj.Y != p.Y {
				t.Errorf("expected transform to match object, got %+v vs (%v,%v)", p, obj.X, obj.Y)
			}
		})
	}
}

func TestStepMotion_ExactSnapIsKept(t *testing.T) {
	e := newTestECS(t)
	m := spawnMover(t, e, "a", 0, 0)
	end := math.Vec2{X: 123.456789, Y: 98.7654321}
	components.Transform.Get(m).Pos = end

	StepMotion(e.World, 1000.0/60)
	if p := components.Transform.Get(m).Pos; p != end {
		t.Errorf("expected %+v untouched, got %+v", end, p)
	}
}
