// Package actions holds time-based behaviors that steer entities by writing
// velocity, leaving the position update to the motion system.
package actions

import (
	"github.com/automoto/glide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EaseTo moves an entity from wherever it is on its first update to a fixed
// destination over durationMs, shaped by an easing function.
//
// Each frame it eases a sub-position per axis and writes the velocity needed
// to get there within deltaMs. Only when the duration has elapsed does it
// write the position, snapping exactly onto the destination.
type EaseTo struct {
	target   *donburi.Entry
	start    math.Vec2
	end      math.Vec2
	duration float64
	elapsed  float64
	distance float64
	easing   EasingFunc

	initialized bool
	stopped     bool
}

var _ components.Action = (*EaseTo)(nil)

// NewEaseTo binds an action to target, which must carry Transform and Motion.
// The start point is not read until the first Update.
func NewEaseTo(target *donburi.Entry, x, y, durationMs float64, easing EasingFunc) (*EaseTo, error) {
	if target == nil || !target.Valid() {
		return nil, &MissingCapabilityError{Capability: "entry"}
	}
	if !target.HasComponent(components.Transform) {
		return nil, &MissingCapabilityError{Capability: "transform"}
	}
	if !target.HasComponent(components.Motion) {
		return nil, &MissingCapabilityError{Capability: "motion"}
	}
	return &EaseTo{
		target:   target,
		end:      math.Vec2{X: x, Y: y},
		duration: durationMs,
		easing:   easing,
	}, nil
}

func (a *EaseTo) initialize(pos math.Vec2) {
	a.start = pos
	a.elapsed = 0
	a.distance = Distance(a.start, a.end)
	a.initialized = true
}

// Update advances the action by deltaMs. A stopped action or a removed
// target leave everything untouched. A non-positive delta does not advance
// time or write velocity, but still snaps once the duration has passed.
func (a *EaseTo) Update(deltaMs float64) {
	if a.stopped || !a.target.Valid() {
		return
	}
	tx := components.Transform.Get(a.target)
	motion := components.Motion.Get(a.target)

	if !a.initialized {
		a.initialize(tx.Pos)
	}

	// Time moves before sampling so the first frame never eases at t=0.
	if deltaMs > 0 && a.elapsed < a.duration {
		a.elapsed += deltaMs
	}

	if a.elapsed < a.duration {
		if deltaMs <= 0 {
			return
		}
		x := a.ease(a.start.X, a.end.X)
		y := a.ease(a.start.Y, a.end.Y)

		seconds := deltaMs / 1000
		motion.Vel = math.Vec2{
			X: (x - tx.Pos.X) / seconds,
			Y: (y - tx.Pos.Y) / seconds,
		}
		return
	}

	tx.Pos = a.end
	motion.Vel = math.Vec2{}
}

// ease samples one axis. Easings assume an increasing interval, so a
// decreasing axis is eased from end to start and mirrored back.
func (a *EaseTo) ease(start, end float64) float64 {
	if end < start {
		return start - (a.easing(a.elapsed, end, start, a.duration) - end)
	}
	return a.easing(a.elapsed, start, end, a.duration)
}

// IsComplete reports whether the action was stopped or target has travelled
// at least the start-to-end distance. This is independent of the duration
// snap in Update; either one may come first.
//
// Before the first Update no start has been captured and it reports false,
// rather than measuring from the origin. A target that is gone or has no
// Transform counts as complete.
func (a *EaseTo) IsComplete(target *donburi.Entry) bool {
	if a.stopped {
		return true
	}
	if target == nil || !target.Valid() || !target.HasComponent(components.Transform) {
		return true
	}
	if !a.initialized {
		return false
	}
	pos := components.Transform.Get(target).Pos
	return Distance(pos, a.start) >= a.distance
}

// Reset re-arms the action. The next Update captures a new start from the
// target's position at that time. Stop is not undone.
func (a *EaseTo) Reset() {
	a.initialized = false
}

// Stop zeroes the target's velocity and cancels the action for good.
func (a *EaseTo) Stop() {
	if a.target.Valid() {
		components.Motion.Get(a.target).Vel = math.Vec2{}
	}
	a.stopped = true
}

// Start returns the captured start point and whether it has been captured.
func (a *EaseTo) Start() (math.Vec2, bool) {
	return a.start, a.initialized
}

// End returns the destination.
func (a *EaseTo) End() math.Vec2 {
	return a.end
}

// Elapsed returns the accumulated time in milliseconds.
func (a *EaseTo) Elapsed() float64 {
	return a.elapsed
}
