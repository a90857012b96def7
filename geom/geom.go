package geom

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/plan"
)

// Epsilon is the float tolerance for exactness checks (on-grid tests,
// coordinate equality). Coordinates are meters, so 1e-9 is far below any
// physical resolution while absorbing accumulated rounding error.
const Epsilon = 1e-9

// Snap rounds v to the nearest multiple of grid. grid must be positive;
// callers validate options before invoking stages.
func Snap(v, grid float64) float64 {
	return math.Round(v/grid) * grid
}

// SnapPoint rounds both coordinates of p to the nearest grid multiple.
func SnapPoint(p plan.Point, grid float64) plan.Point {
	return plan.Point{X: Snap(p.X, grid), Y: Snap(p.Y, grid)}
}

// OnGrid reports whether v is an exact multiple of grid within Epsilon.
func OnGrid(v, grid float64) bool {
	return math.Abs(v-Snap(v, grid)) < Epsilon
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b plan.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// SamePoint reports whether a and b coincide within tol.
func SamePoint(a, b plan.Point, tol float64) bool {
	return Dist(a, b) <= tol
}

// AlmostEqual reports whether a and b differ by less than Epsilon.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// AngleDeg returns the direction from a to b in degrees within [0, 360),
// counterclockwise from the positive X axis.
func AngleDeg(a, b plan.Point) float64 {
	deg := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NearestOrthogonal returns the orthogonal angle (0, 90, 180 or 270)
// closest to deg, where deg is in [0, 360).
func NearestOrthogonal(deg float64) float64 {
	ortho := math.Round(deg/90) * 90
	if ortho >= 360 {
		ortho = 0
	}
	return ortho
}

// IsNearOrthogonal reports whether deg lies within tol degrees of an
// orthogonal angle (wrap-around included: 359.5° is near 0° for tol ≥ 0.5).
func IsNearOrthogonal(deg, tol float64) bool {
	diff := math.Mod(deg, 90)
	if diff > 45 {
		diff = 90 - diff
	}
	return diff <= tol
}

// PointAtAngle returns the point at distance length from start along the
// direction deg (degrees, counterclockwise from +X). Used to rebuild a
// wall endpoint after rotating the wall to an exact orthogonal angle.
func PointAtAngle(start plan.Point, length, deg float64) plan.Point {
	rad := deg * math.Pi / 180
	return plan.Point{
		X: start.X + length*math.Cos(rad),
		Y: start.Y + length*math.Sin(rad),
	}
}

// Centroid returns the arithmetic mean of pts. It panics on an empty
// slice; callers only invoke it on non-empty clusters.
func Centroid(pts []plan.Point) plan.Point {
	if len(pts) == 0 {
		panic("geom: Centroid of empty point set")
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return plan.Point{X: sx / n, Y: sy / n}
}

// CellKey buckets p into a square cell of the given size and renders a
// stable string key. Points whose cells match are treated as coincident
// by the duplicate-merging stage and the incidence map.
func CellKey(p plan.Point, cell float64) string {
	return fmt.Sprintf("%d:%d", int(math.Round(p.X/cell)), int(math.Round(p.Y/cell)))
}
