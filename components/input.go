package components

import (
	cfg "github.com/automoto/glide/config"
	"github.com/yohamta/donburi"
)

// CommandState represents the temporal state of a command
type CommandState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all commands.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.CommandCount]bool // Current frame's Pressed state
	Previous [cfg.CommandCount]bool // Previous frame's Pressed state
}

var Input = donburi.NewComponentType[InputData]()
