package repair

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// normalizeAngles is stage 2: walls within AngleTolerance of an
// orthogonal angle are rotated to exactly 0/90/180/270°, preserving the
// start point and wall length, then re-snapped to grid. Re-snapping may
// change the length by up to one grid unit; the orthogonality is exact.
func normalizeAngles(walls []plan.WallSegment, opts Options) ([]plan.WallSegment, StageReport) {
	report := StageReport{Stage: StageAngles}
	out := make([]plan.WallSegment, len(walls))
	copy(out, walls)
	if !opts.EnforceOrthogonal {
		return out, report
	}
	for i, w := range out {
		if w.Start == w.End {
			continue // degenerate; stage 6 removes it
		}
		angle := w.Angle()
		if !geom.IsNearOrthogonal(angle, opts.AngleTolerance) {
			continue
		}
		ortho := geom.NearestOrthogonal(angle)
		if angularDiff(angle, ortho) < geom.Epsilon {
			continue
		}
		rotated := geom.PointAtAngle(w.Start, w.Length(), ortho)
		out[i].End = geom.SnapPoint(rotated, opts.GridSize)
		report.Fixes = append(report.Fixes, Fix{
			Stage:  StageAngles,
			WallID: w.ID,
			Detail: fmt.Sprintf("angle %.2f° → %.0f°", angle, ortho),
		})
	}
	return out, report
}

// angularDiff returns the absolute difference between two angles in
// degrees, accounting for wrap-around (359.9° vs 0° is 0.1°).
func angularDiff(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
