package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/glide/actions"
	"github.com/automoto/glide/assets"
	"github.com/automoto/glide/config"
	"github.com/automoto/glide/fonts"
	"github.com/automoto/glide/scenes"
	"github.com/automoto/glide/systems"
	"github.com/automoto/glide/trace"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	presetsPath := flag.String("presets", "", "YAML file overriding the built-in easing presets, reloaded on change")
	traceDir := flag.String("trace", config.Debug.TraceDir, "directory for per-frame CSV motion traces")
	levelPath := flag.String("level", "levels/demo.tmx", "embedded level to play")
	debug := flag.Bool("debug", config.Debug.Enabled, "start with the debug overlay on")
	flag.Parse()

	config.Debug.TraceDir = *traceDir

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.SmallSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var watcher *config.Watcher
	if *presetsPath != "" {
		presets, err := config.LoadPresets(*presetsPath, actions.EasingNames()...)
		if err != nil {
			log.Fatalf("Failed to load presets: %v", err)
		}
		systems.SetPresets(presets)

		watcher, err = config.NewWatcher(*presetsPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *presetsPath, err)
		} else {
			defer watcher.Close()
		}
	}

	recorder, err := trace.Create(config.Debug.TraceDir)
	if err != nil {
		log.Printf("Warning: Could not start motion trace: %v", err)
	}
	if recorder != nil {
		systems.SetTraceRecorder(recorder)
		defer recorder.Close()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *debug {
		config.Debug.Enabled = true
	}

	level := assets.MustLoadLevel(*levelPath)
	if err := ebiten.RunGame(NewGame(scenes.NewDemoScene(level, *presetsPath, watcher))); err != nil {
		log.Fatal(err)
	}
}
