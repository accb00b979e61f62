package config

import "image/color"

// MotionConfig contains movement and integration configuration values
type MotionConfig struct {
	// Fixed step fed to actions and the motion system each frame
	FrameMs float64

	// Mover dimensions
	MoverWidth  float64
	MoverHeight float64

	// Collision space cell size
	CellSize int

	// Preset used when a mover or saved setting names none
	DefaultPreset string
}

// PlatformConfig contains floating platform defaults
type PlatformConfig struct {
	Travel  float64 // pixels moved up and back
	Seconds float64 // duration of one leg
}

// HUDConfig contains on-screen text configuration values
type HUDConfig struct {
	Margin     int
	LineHeight int
	FontSize   float64
	SmallSize  float64
	TextColor  color.RGBA
	HintColor  color.RGBA
}

// PanelConfig contains preset picker configuration values
type PanelConfig struct {
	ButtonWidth  int
	ButtonHeight int
	Spacing      int
	FontSize     float64
	IdleColor    color.RGBA
	HoverColor   color.RGBA
	PressedColor color.RGBA
	TextColor    color.RGBA
	PanelColor   color.RGBA
	MaxPerRow    int
}

// RenderConfig contains colors for world drawing
type RenderConfig struct {
	Background    color.RGBA
	Solid         color.RGBA
	Platform      color.RGBA
	Mover         color.RGBA
	SelectedMover color.RGBA
	Waypoint      color.RGBA
	Path          color.RGBA
	Velocity      color.RGBA
	WaypointSize  float32
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Enabled  bool
	TraceDir string // empty disables CSV motion traces
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Motion MotionConfig
var Platform PlatformConfig
var HUD HUDConfig
var Panel PanelConfig
var Render RenderConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "glide",
	}

	Motion = MotionConfig{
		FrameMs:       1000.0 / float64(C.TPS),
		MoverWidth:    16,
		MoverHeight:   16,
		CellSize:      16,
		DefaultPreset: "smooth",
	}

	Platform = PlatformConfig{
		Travel:  96,
		Seconds: 2,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 14,
		FontSize:   12,
		SmallSize:  10,
		TextColor:  White,
		HintColor:  color.RGBA{R: 180, G: 180, B: 180, A: 255},
	}

	Panel = PanelConfig{
		ButtonWidth:  70,
		ButtonHeight: 18,
		Spacing:      4,
		FontSize:     10,
		IdleColor:    DarkBlue,
		HoverColor:   LightBlue,
		PressedColor: color.RGBA{R: 40, G: 70, B: 120, A: 255},
		TextColor:    White,
		PanelColor:   BlackOverlay,
		MaxPerRow:    8,
	}

	Render = RenderConfig{
		Background:    color.RGBA{R: 20, G: 20, B: 30, A: 255},
		Solid:         Grey,
		Platform:      Orange,
		Mover:         LightBlue,
		SelectedMover: Yellow,
		Waypoint:      Magenta,
		Path:          color.RGBA{R: 255, G: 255, B: 255, A: 60},
		Velocity:      LightGreen,
		WaypointSize:  3,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}
