package repair

import (
	"fmt"

	"github.com/planforge/planforge/plan"
)

// dropShortWalls is stage 6: walls shorter than MinWallLength are
// removed, zero-length fragments included. Each removal is recorded.
func dropShortWalls(walls []plan.WallSegment, opts Options) ([]plan.WallSegment, StageReport) {
	report := StageReport{Stage: StageShortWalls}
	out := make([]plan.WallSegment, 0, len(walls))
	for _, w := range walls {
		if length := w.Length(); length < opts.MinWallLength {
			report.Fixes = append(report.Fixes, Fix{
				Stage:  StageShortWalls,
				WallID: w.ID,
				Detail: fmt.Sprintf("removed %.2f m wall (minimum %.2f m)", length, opts.MinWallLength),
			})
			continue
		}
		out = append(out, w)
	}
	return out, report
}
