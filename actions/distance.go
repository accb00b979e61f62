package actions

import (
	"github.com/yohamta/donburi/features/math"
	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns the Euclidean distance between two points.
func Distance(a, b math.Vec2) float64 {
	return r2.Norm(r2.Sub(r2.Vec(a), r2.Vec(b)))
}
