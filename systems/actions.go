package systems

import (
	"fmt"

	"github.com/automoto/glide/actions"
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateActions ticks every running action by one fixed frame.
// Must run BEFORE UpdateMotion in the system order.
func UpdateActions(ecs *ecs.ECS) {
	StepActions(ecs.World, cfg.Motion.FrameMs)
}

// StepActions advances the current action of each entity by deltaMs and
// evicts it once it reports completion. Eviction zeroes the entity's
// velocity so an action finishing on distance leaves nothing behind.
func StepActions(world donburi.World, deltaMs float64) {
	components.Actions.Each(world, func(e *donburi.Entry) {
		data := components.Actions.Get(e)
		if data.Current == nil {
			return
		}

		data.Current.Update(deltaMs)
		if !data.Current.IsComplete(e) {
			return
		}

		data.Current = nil
		data.Completed++
		if e.HasComponent(components.Motion) {
			components.Motion.Get(e).Vel = math.Vec2{}
		}
	})
}

// IssueEaseTo replaces whatever entry is doing with an EaseTo towards (x, y)
// shaped by preset.
func IssueEaseTo(entry *donburi.Entry, x, y float64, preset cfg.Preset) error {
	easing, err := actions.Lookup(preset.Easing)
	if err != nil {
		return fmt.Errorf("preset %q: %w", preset.Name, err)
	}

	action, err := actions.NewEaseTo(entry, x, y, preset.DurationMs, easing)
	if err != nil {
		return err
	}
	if !entry.HasComponent(components.Actions) {
		return &actions.MissingCapabilityError{Capability: "actions"}
	}

	data := components.Actions.Get(entry)
	if data.Current != nil {
		data.Current.Stop()
	}
	data.Current = action
	data.Last = action
	return nil
}

// ReplayLast re-arms the most recently issued action from the entity's
// current position. A stopped action stays stopped and is evicted on the
// next frame. Returns false when there is nothing to replay.
func ReplayLast(entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Actions) {
		return false
	}
	data := components.Actions.Get(entry)
	if data.Last == nil {
		return false
	}
	if data.Current != nil && data.Current != data.Last {
		data.Current.Stop()
	}
	data.Last.Reset()
	data.Current = data.Last
	return true
}

// StopCurrent cancels the running action, if any.
func StopCurrent(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Actions) {
		return
	}
	data := components.Actions.Get(entry)
	if data.Current == nil {
		return
	}
	data.Current.Stop()
	data.Current = nil
}
