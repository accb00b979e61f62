package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/glide/actions"
	"github.com/automoto/glide/assets"
	cfg "github.com/automoto/glide/config"
	"github.com/automoto/glide/systems"
	"github.com/automoto/glide/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DemoScene hosts a level full of movers driven by EaseTo actions.
type DemoScene struct {
	ecs       *ecs.ECS
	level     *assets.Level
	presetsUI *ui.PresetsUI
	once      sync.Once

	// Preset override file and its watcher, both optional
	presetsPath string
	watcher     *cfg.Watcher
}

func NewDemoScene(level *assets.Level, presetsPath string, watcher *cfg.Watcher) *DemoScene {
	return &DemoScene{
		level:       level,
		presetsPath: presetsPath,
		watcher:     watcher,
	}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.pollWatcher()

	ds.presetsUI.UI.Update()
	ds.ecs.Update()

	if index := systems.GetOrCreateSettings(ds.ecs).PresetIndex; index != ds.presetsUI.Selected() {
		ds.presetsUI.Select(index)
	}
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	ds.presetsUI.UI.Draw(screen)
}

func (ds *DemoScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then actions write velocity, then motion applies it.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateActions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMotion))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTrace))
	ecs.AddSystem(systems.ConsumePauseStep)

	ecs.AddRenderer(cfg.LayerWorld, systems.DrawLevel)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawMovers)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawPause)

	ds.ecs = ecs

	systems.SpawnLevel(ds.ecs, ds.level)

	settings := systems.GetOrCreateSettings(ds.ecs)
	ds.presetsUI = ui.NewPresetsUI(systems.ActivePresets(), settings.PresetIndex, func(index int) {
		systems.SelectPreset(ds.ecs, index)
	})
}

// pollWatcher reloads the preset file when it changes on disk. A file that
// fails to load keeps the current presets.
func (ds *DemoScene) pollWatcher() {
	if ds.watcher == nil {
		return
	}
	select {
	case _, ok := <-ds.watcher.Events:
		if !ok {
			ds.watcher = nil
			return
		}
		presets, err := cfg.LoadPresets(ds.presetsPath, actions.EasingNames()...)
		if err != nil {
			log.Printf("Warning: Could not reload presets: %v", err)
			return
		}
		systems.SetPresets(presets)
		ds.presetsUI.Rebuild(presets)
		log.Printf("Reloaded %d presets from %s", len(presets.Presets), ds.presetsPath)
	case err, ok := <-ds.watcher.Errors:
		if ok {
			log.Printf("Warning: Preset watcher error: %v", err)
		}
	default:
	}
}
