package repair

import (
	"fmt"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// snapToGrid is stage 1: every wall coordinate is rounded to the nearest
// GridSize multiple. One fix is recorded per coordinate actually moved.
func snapToGrid(walls []plan.WallSegment, opts Options) ([]plan.WallSegment, StageReport) {
	report := StageReport{Stage: StageGridSnap}
	out := make([]plan.WallSegment, len(walls))
	for i, w := range walls {
		out[i] = w
		out[i].Start = snapEndpoint(w.ID, "start", w.Start, opts.GridSize, &report)
		out[i].End = snapEndpoint(w.ID, "end", w.End, opts.GridSize, &report)
	}
	return out, report
}

// snapEndpoint snaps one endpoint, recording a fix per moved coordinate.
func snapEndpoint(wallID, which string, p plan.Point, grid float64, report *StageReport) plan.Point {
	snapped := geom.SnapPoint(p, grid)
	if !geom.AlmostEqual(p.X, snapped.X) {
		report.Fixes = append(report.Fixes, Fix{
			Stage:  StageGridSnap,
			WallID: wallID,
			Detail: fmt.Sprintf("%s.x %.4f → %.2f", which, p.X, snapped.X),
		})
	}
	if !geom.AlmostEqual(p.Y, snapped.Y) {
		report.Fixes = append(report.Fixes, Fix{
			Stage:  StageGridSnap,
			WallID: wallID,
			Detail: fmt.Sprintf("%s.y %.4f → %.2f", which, p.Y, snapped.Y),
		})
	}
	return snapped
}
