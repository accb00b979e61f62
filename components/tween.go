package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a floating platform's Y coordinate.
type TweenData struct {
	Seq *gween.Sequence
}

var Tween = donburi.NewComponentType[TweenData]()
