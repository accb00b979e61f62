package systems

import (
	"testing"

	"github.com/automoto/glide/assets"
	"github.com/automoto/glide/components"
	"github.com/automoto/glide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func spawnDemo(t *testing.T) (*ecs.ECS, *assets.Level) {
	t.Helper()
	level := assets.MustLoadLevel("levels/demo.tmx")
	e := ecs.NewECS(donburi.NewWorld())
	SpawnLevel(e, level)
	return e, level
}

func TestSpawnLevel(t *testing.T) {
	e, level := spawnDemo(t)

	counts := []struct {
		name string
		tag  interface {
			Each(donburi.World, func(*donburi.Entry))
		}
		want int
	}{
		{"solids", tags.Solid, len(level.Solids)},
		{"platforms", tags.FloatingPlatform, len(level.Platforms)},
		{"movers", tags.Mover, len(level.Movers)},
		{"waypoints", tags.Waypoint, len(level.Waypoints)},
	}
	for _, c := range counts {
		got := 0
		c.tag.Each(e.World, func(*donburi.Entry) { got++ })
		if got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, got)
		}
	}

	objects := spaceOf(e).Space.Objects()
	want := len(level.Solids) + len(level.Platforms) + len(level.Movers)
	if len(objects) != want {
		t.Errorf("expected %d collision objects, got %d", want, len(objects))
	}

	movers := Movers(e)
	for i, spawn := range level.Movers {
		m := components.Mover.Get(movers[i])
		if m.Name != spawn.Name || m.Preset != spawn.Preset {
			t.Errorf("mover %d: expected %+v, got %+v", i, spawn, m)
		}
		if p := components.Transform.Get(movers[i]).Pos; p != (math.Vec2{X: spawn.X, Y: spawn.Y}) {
			t.Errorf("mover %s: expected position (%v,%v), got %+v", spawn.Name, spawn.X, spawn.Y, p)
		}
	}
}

func TestSendToWaypoints(t *testing.T) {
	e, level := spawnDemo(t)

	sent, err := SendToWaypoints(e)
	if err != nil {
		t.Fatal(err)
	}
	if sent != len(level.Movers) {
		t.Fatalf("expected %d movers sent, got %d", len(level.Movers), sent)
	}

	// Longer than the slowest demo preset.
	for i := 0; i < 240; i++ {
		StepPlatforms(e.World, 1000.0/60)
		step(e, 1000.0/60)
	}

	for _, m := range Movers(e) {
		data := components.Actions.Get(m)
		name := components.Mover.Get(m).Name
		if data.Current != nil {
			t.Errorf("%s: expected action to finish", name)
		}
		if data.Completed != 1 {
			t.Errorf("%s: expected 1 completion, got %d", name, data.Completed)
		}
		if v := components.Motion.Get(m).Vel; v != (math.Vec2{}) {
			t.Errorf("%s: expected to be at rest, got %+v", name, v)
		}
	}
}

func TestMoverPreset(t *testing.T) {
	e := newTestECS(t)
	space := spaceOf(e).Space

	own := spawnMoverWithPreset(e, space, "dash")
	if p := MoverPreset(e, own); p.Name != "dash" {
		t.Errorf("expected own preset dash, got %s", p.Name)
	}

	fallback := spawnMoverWithPreset(e, space, "nope")
	if p := MoverPreset(e, fallback); p != CurrentPreset(e) {
		t.Errorf("expected picker preset, got %s", p.Name)
	}
}

func TestSelectedMoverWraps(t *testing.T) {
	e := newTestECS(t)
	if SelectedMover(e) != nil {
		t.Fatal("expected nil without movers")
	}
	a := spawnMover(t, e, "a", 0, 0)
	b := spawnMover(t, e, "b", 32, 0)

	settings := GetOrCreateSettings(e)
	settings.Selected = -1
	if SelectedMover(e) != b {
		t.Error("expected -1 to wrap to the last mover")
	}
	settings.Selected = 2
	if SelectedMover(e) != a {
		t.Error("expected 2 to wrap to the first mover")
	}
}
