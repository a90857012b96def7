package repair

import (
	"fmt"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// closeExteriorLoop is stage 5: walls flagged external are treated as an
// ordered polyline that must close into the building envelope. A seam
// between consecutive exterior walls (wrap-around included) that is open
// by more than SnapTolerance but no more than 10× SnapTolerance is
// forced shut by moving the earlier wall's end onto the later wall's
// start. Wider gaps are genuine geometry errors and become warnings; no
// forced repair happens beyond the threshold.
func closeExteriorLoop(walls []plan.WallSegment, opts Options) ([]plan.WallSegment, StageReport) {
	report := StageReport{Stage: StageExteriorLoop}
	out := make([]plan.WallSegment, len(walls))
	copy(out, walls)

	// Indices of exterior walls in document order.
	var ext []int
	for i := range out {
		if out[i].External {
			ext = append(ext, i)
		}
	}
	if len(ext) < 2 {
		if len(ext) == 1 {
			report.Warnings = append(report.Warnings, "exterior loop has a single wall and cannot close")
		}
		return out, report
	}

	maxGap := opts.maxLoopGap()
	for k := range ext {
		cur := ext[k]
		next := ext[(k+1)%len(ext)]
		gap := geom.Dist(out[cur].End, out[next].Start)
		if gap <= opts.SnapTolerance {
			continue // coincident within tolerance
		}
		if gap <= maxGap {
			out[cur].End = out[next].Start
			report.Fixes = append(report.Fixes, Fix{
				Stage:  StageExteriorLoop,
				WallID: out[cur].ID,
				Detail: fmt.Sprintf("closed %.2f m seam to wall %s", gap, out[next].ID),
			})
			continue
		}
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("exterior gap of %.2f m between walls %s and %s exceeds repair threshold %.2f m",
				gap, out[cur].ID, out[next].ID, maxGap))
	}
	return out, report
}
