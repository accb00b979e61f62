package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/fonts"
	"github.com/automoto/glide/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// velocityScale turns units per second into a visible vector length.
const velocityScale = 0.1

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry).Space
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvMover) {
				c = color.RGBA{0, 0, 255, 255}
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	font := fonts.Small.Get()
	for _, e := range Movers(ecs) {
		pos := components.Transform.Get(e).Pos
		vel := components.Motion.Get(e).Vel
		cx := float32(pos.X + cfg.Motion.MoverWidth/2)
		cy := float32(pos.Y + cfg.Motion.MoverHeight/2)
		vector.StrokeLine(screen, cx, cy,
			cx+float32(vel.X*velocityScale), cy+float32(vel.Y*velocityScale),
			1, cfg.Render.Velocity, true)

		label := fmt.Sprintf("%.1f,%.1f v%.0f,%.0f", pos.X, pos.Y, vel.X, vel.Y)
		text.Draw(screen, label, font, int(pos.X), int(pos.Y)-2, cfg.HUD.HintColor)
	}

	completed := 0
	components.Actions.Each(ecs.World, func(e *donburi.Entry) {
		completed += components.Actions.Get(e).Completed
	})
	text.Draw(screen, fmt.Sprintf("tps %.0f  completed %d", ebiten.ActualTPS(), completed),
		font, cfg.C.Width-140, cfg.HUD.Margin+cfg.HUD.LineHeight, cfg.HUD.TextColor)
}
