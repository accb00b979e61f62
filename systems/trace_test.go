package systems

import (
	"bytes"
	"strings"
	"testing"

	"github.com/automoto/glide/components"
	"github.com/automoto/glide/trace"
	"github.com/yohamta/donburi/features/math"
)

func TestRecordTrace(t *testing.T) {
	e := newTestECS(t)
	m := spawnMover(t, e, "red", 4, 8)
	spawnMover(t, e, "blue", 40, 8)
	components.Motion.Get(m).Vel = math.Vec2{X: 12}

	var buf bytes.Buffer
	r := trace.NewRecorder(&buf)
	RecordTrace(e.World, r)
	RecordTrace(e.World, r)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header and 4 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "red") || !strings.Contains(out, "blue") {
		t.Errorf("expected both movers in trace:\n%s", out)
	}
	if r.Frame() != 2 {
		t.Errorf("expected 2 frames, got %d", r.Frame())
	}
}

func TestUpdateTraceNeedsRecorder(t *testing.T) {
	e := newTestECS(t)
	spawnMover(t, e, "red", 0, 0)

	SetTraceRecorder(nil)
	UpdateTrace(e)
	if GetOrCreateSettings(e).Tracing {
		t.Error("expected tracing off without a recorder")
	}

	var buf bytes.Buffer
	SetTraceRecorder(trace.NewRecorder(&buf))
	defer SetTraceRecorder(nil)
	GetOrCreateSettings(e).Tracing = true
	UpdateTrace(e)
	if !strings.Contains(buf.String(), "red") {
		t.Errorf("expected a sample, got %q", buf.String())
	}
}
