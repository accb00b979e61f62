package systems

import (
	"fmt"

	"github.com/automoto/glide/components"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudHint = "click: move  tab: select  1-9: preset  s: stop  r: replay  w: waypoints  p: pause  f1: debug"

// DrawHUD shows the selected mover, the active preset and the key hints.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	font := fonts.Regular.Get()
	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineHeight

	preset := CurrentPreset(ecs)
	text.Draw(screen, fmt.Sprintf("preset %s (%s, %.0fms)", preset.Name, preset.Easing, preset.DurationMs),
		font, x, y, cfg.HUD.TextColor)

	if selected := SelectedMover(ecs); selected != nil {
		mover := components.Mover.Get(selected)
		status := "idle"
		if components.Actions.Get(selected).Current != nil {
			status = "moving"
		}
		y += cfg.HUD.LineHeight
		text.Draw(screen, fmt.Sprintf("mover %s: %s", mover.Name, status), font, x, y, cfg.HUD.TextColor)
	}

	settings := GetOrCreateSettings(ecs)
	if settings.Tracing {
		y += cfg.HUD.LineHeight
		text.Draw(screen, "tracing", font, x, y, cfg.Red)
	}

	text.Draw(screen, hudHint, fonts.Small.Get(), x, PanelTop()-cfg.HUD.Margin/2, cfg.HUD.HintColor)
}
