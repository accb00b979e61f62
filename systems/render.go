package systems

import (
	"image/color"

	"github.com/automoto/glide/actions"
	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the background and draws solids and floating platforms.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		drawObject(screen, components.Object.Get(e), cfg.Render.Solid)
	})
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		drawObject(screen, components.Object.Get(e), cfg.Render.Platform)
	})
}

func drawObject(screen *ebiten.Image, obj *components.ObjectData, c color.Color) {
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}

// DrawMovers renders waypoints, the path of every running EaseTo and the
// movers themselves, highlighting the selected one.
func DrawMovers(ecs *ecs.ECS, screen *ebiten.Image) {
	halfW := float32(cfg.Motion.MoverWidth / 2)
	halfH := float32(cfg.Motion.MoverHeight / 2)

	tags.Waypoint.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Pos
		vector.DrawFilledCircle(screen, float32(pos.X)+halfW, float32(pos.Y)+halfH,
			cfg.Render.WaypointSize, cfg.Render.Waypoint, true)
	})

	selected := SelectedMover(ecs)
	for _, e := range Movers(ecs) {
		if easeTo, ok := components.Actions.Get(e).Current.(*actions.EaseTo); ok {
			if start, ok := easeTo.Start(); ok {
				end := easeTo.End()
				vector.StrokeLine(screen,
					float32(start.X)+halfW, float32(start.Y)+halfH,
					float32(end.X)+halfW, float32(end.Y)+halfH,
					1, cfg.Render.Path, true)
			}
		}

		c := cfg.Render.Mover
		if e == selected {
			c = cfg.Render.SelectedMover
		}
		pos := components.Transform.Get(e).Pos
		vector.FillRect(screen, float32(pos.X), float32(pos.Y),
			float32(cfg.Motion.MoverWidth), float32(cfg.Motion.MoverHeight), c, false)
	}
}
