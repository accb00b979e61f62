package systems

import (
	"testing"

	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/yohamta/donburi/features/math"
)

func press(input *components.InputData, ids ...cfg.CommandID) {
	input.Previous = input.Current
	input.Current = [cfg.CommandCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func TestGetCommand(t *testing.T) {
	var input components.InputData
	press(&input, cfg.CommandStop)
	if s := GetCommand(&input, cfg.CommandStop); !s.Pressed || !s.JustPressed || s.JustReleased {
		t.Errorf("expected just pressed, got %+v", s)
	}
	press(&input, cfg.CommandStop)
	if s := GetCommand(&input, cfg.CommandStop); !s.Pressed || s.JustPressed {
		t.Errorf("expected held, got %+v", s)
	}
	press(&input)
	if s := GetCommand(&input, cfg.CommandStop); s.Pressed || !s.JustReleased {
		t.Errorf("expected just released, got %+v", s)
	}
}

func TestApplyCommands_SelectAndStop(t *testing.T) {
	e := newTestECS(t)
	a := spawnMover(t, e, "a", 0, 0)
	b := spawnMover(t, e, "b", 32, 0)
	input := getOrCreateInput(e)

	press(input, cfg.CommandNextMover)
	ApplyCommands(e, input)
	if SelectedMover(e) != b {
		t.Fatal("expected next mover to be selected")
	}

	// Holding the key does not repeat.
	press(input, cfg.CommandNextMover)
	ApplyCommands(e, input)
	if SelectedMover(e) != b {
		t.Fatal("expected held key not to cycle again")
	}

	MoveSelectedTo(e, 108, 58)
	if components.Actions.Get(b).Current == nil || components.Actions.Get(a).Current != nil {
		t.Fatal("expected only the selected mover to move")
	}
	StepActions(e.World, 500)

	press(input, cfg.CommandStop)
	ApplyCommands(e, input)
	if components.Actions.Get(b).Current != nil {
		t.Error("expected stop command to cancel the action")
	}
	if v := components.Motion.Get(b).Vel; v != (math.Vec2{}) {
		t.Errorf("expected zero velocity, got %+v", v)
	}
}

func TestApplyCommands_Waypoints(t *testing.T) {
	e, level := spawnDemo(t)
	input := getOrCreateInput(e)

	press(input, cfg.CommandWaypoints)
	ApplyCommands(e, input)

	for _, m := range Movers(e) {
		if components.Actions.Get(m).Current == nil {
			t.Errorf("%s: expected to be heading to its waypoint", components.Mover.Get(m).Name)
		}
	}
	if len(Movers(e)) != len(level.Movers) {
		t.Errorf("expected %d movers, got %d", len(level.Movers), len(Movers(e)))
	}
}

func TestApplyCommands_DebugToggle(t *testing.T) {
	e := newTestECS(t)
	input := getOrCreateInput(e)

	press(input, cfg.CommandDebug)
	ApplyCommands(e, input)
	if !GetOrCreateSettings(e).Debug {
		t.Error("expected debug on")
	}
	press(input)
	press(input, cfg.CommandDebug)
	ApplyCommands(e, input)
	if GetOrCreateSettings(e).Debug {
		t.Error("expected debug off")
	}
}

func TestMoveSelectedToCentresMover(t *testing.T) {
	e := newTestECS(t)
	m := spawnMover(t, e, "a", 0, 0)

	MoveSelectedTo(e, 108, 58)
	for i := 0; i < 200 && components.Actions.Get(m).Current != nil; i++ {
		step(e, cfg.Motion.FrameMs)
	}

	want := math.Vec2{X: 108 - cfg.Motion.MoverWidth/2, Y: 58 - cfg.Motion.MoverHeight/2}
	if p := components.Transform.Get(m).Pos; p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
}
