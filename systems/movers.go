package systems

import (
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for mover entries to avoid allocations
var moverEntries []*donburi.Entry

// Movers returns the mover entries in spawn order. The slice is reused
// between calls.
func Movers(e *ecs.ECS) []*donburi.Entry {
	moverEntries = moverEntries[:0]
	tags.Mover.Each(e.World, func(entry *donburi.Entry) {
		moverEntries = append(moverEntries, entry)
	})
	return moverEntries
}

// SelectedMover returns the mover picked with Tab, or nil without movers.
func SelectedMover(e *ecs.ECS) *donburi.Entry {
	movers := Movers(e)
	if len(movers) == 0 {
		return nil
	}
	settings := GetOrCreateSettings(e)
	n := len(movers)
	settings.Selected = ((settings.Selected % n) + n) % n
	return movers[settings.Selected]
}

// MoverPreset resolves the preset a mover uses when sent to its waypoint:
// its own preset if it names a known one, the picker's otherwise.
func MoverPreset(e *ecs.ECS, entry *donburi.Entry) cfg.Preset {
	if name := components.Mover.Get(entry).Preset; name != "" {
		if p, ok := activePresets.Find(name); ok {
			return p
		}
	}
	return CurrentPreset(e)
}

// WaypointFor finds the waypoint assigned to the named mover.
func WaypointFor(e *ecs.ECS, mover string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Waypoint.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Waypoint.Get(entry).Mover == mover {
			found = entry
		}
	})
	return found, found != nil
}

// SendToWaypoints issues an EaseTo from every mover to its waypoint.
// Returns the number of movers sent.
func SendToWaypoints(e *ecs.ECS) (int, error) {
	sent := 0
	for _, entry := range Movers(e) {
		mover := components.Mover.Get(entry)
		waypoint, ok := WaypointFor(e, mover.Name)
		if !ok {
			continue
		}
		pos := components.Transform.Get(waypoint).Pos
		if err := IssueEaseTo(entry, pos.X, pos.Y, MoverPreset(e, entry)); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
