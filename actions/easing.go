package actions

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// EasingFunc maps the current time within [0, duration] to a value between
// startValue and endValue. Actions assume it is monotonic and increasing when
// startValue <= endValue.
type EasingFunc func(currentTime, startValue, endValue, duration float64) float64

// Linear interpolates at constant speed.
func Linear(currentTime, startValue, endValue, duration float64) float64 {
	return startValue + (endValue-startValue)*currentTime/duration
}

// FromTween adapts a gween curve. The curve eases a unit interval in float32
// and the result is scaled onto [startValue, endValue] in float64, so large
// coordinates keep their precision. Progress is clamped to [0, 1].
func FromTween(fn ease.TweenFunc) EasingFunc {
	return func(currentTime, startValue, endValue, duration float64) float64 {
		v := float64(fn(float32(currentTime), 0, 1, float32(duration)))
		v = math.Max(0, math.Min(1, v))
		return startValue + (endValue-startValue)*v
	}
}

// Curves that leave the interval (back, elastic, bounce, expo) are left out.
var easings = map[string]EasingFunc{
	"linear":     Linear,
	"inQuad":     FromTween(ease.InQuad),
	"outQuad":    FromTween(ease.OutQuad),
	"inOutQuad":  FromTween(ease.InOutQuad),
	"inCubic":    FromTween(ease.InCubic),
	"outCubic":   FromTween(ease.OutCubic),
	"inOutCubic": FromTween(ease.InOutCubic),
	"inQuart":    FromTween(ease.InQuart),
	"outQuart":   FromTween(ease.OutQuart),
	"inOutQuart": FromTween(ease.InOutQuart),
	"inQuint":    FromTween(ease.InQuint),
	"outQuint":   FromTween(ease.OutQuint),
	"inOutQuint": FromTween(ease.InOutQuint),
	"inSine":     FromTween(ease.InSine),
	"outSine":    FromTween(ease.OutSine),
	"inOutSine":  FromTween(ease.InOutSine),
	"inCirc":     FromTween(ease.InCirc),
	"outCirc":    FromTween(ease.OutCirc),
	"inOutCirc":  FromTween(ease.InOutCirc),
}

// Lookup returns the easing registered under name.
func Lookup(name string) (EasingFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// EasingNames lists the catalog in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
