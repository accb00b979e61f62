package systems

import (
	"log"

	"github.com/automoto/glide/components"
	"github.com/automoto/glide/trace"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var traceRecorder *trace.Recorder

// SetTraceRecorder installs the recorder UpdateTrace writes to. Nil turns
// tracing off.
func SetTraceRecorder(r *trace.Recorder) {
	traceRecorder = r
}

// UpdateTrace samples every mover after motion has been integrated.
// Must run AFTER UpdateMotion in the system order.
func UpdateTrace(ecs *ecs.ECS) {
	if traceRecorder == nil || !GetOrCreateSettings(ecs).Tracing {
		return
	}
	RecordTrace(ecs.World, traceRecorder)
}

// RecordTrace adds one sample per mover to r and flushes the frame.
func RecordTrace(world donburi.World, r *trace.Recorder) {
	components.Mover.Each(world, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Pos
		vel := components.Motion.Get(e).Vel
		r.Add(trace.Sample{
			Mover:  components.Mover.Get(e).Name,
			X:      pos.X,
			Y:      pos.Y,
			VX:     vel.X,
			VY:     vel.Y,
			Active: components.Actions.Get(e).Current != nil,
		})
	})
	if err := r.Flush(); err != nil {
		log.Printf("Warning: Could not write trace: %v", err)
	}
}
