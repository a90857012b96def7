package validate

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// precisionScale defines "excess decimal precision": coordinates are
// meters, so anything finer than 0.1 mm is generator noise, not design.
const precisionScale = 1e4

// checkGrid blocks on endpoints that are off-grid or carry excess
// decimal precision. A repaired plan passes this check by construction;
// failing it means the plan skipped the repair pipeline.
func checkGrid(p *plan.Plan, pol Policy) []Issue {
	var issues []Issue
	for _, w := range p.Walls {
		issues = append(issues, checkGridPoint(w.ID, "start", w.Start, pol.GridSize)...)
		issues = append(issues, checkGridPoint(w.ID, "end", w.End, pol.GridSize)...)
	}
	return issues
}

func checkGridPoint(wallID, which string, pt plan.Point, grid float64) []Issue {
	var issues []Issue
	for _, c := range [2]struct {
		axis  string
		value float64
	}{{"x", pt.X}, {"y", pt.Y}} {
		switch {
		case !geom.OnGrid(c.value, grid):
			issues = append(issues, Issue{
				Check:     "grid-alignment",
				Severity:  SeverityBlocker,
				Message:   fmt.Sprintf("wall %s %s.%s = %v is not a multiple of %.2f m", wallID, which, c.axis, c.value, grid),
				ElementID: wallID,
			})
		case math.Abs(c.value*precisionScale-math.Round(c.value*precisionScale)) > geom.Epsilon*precisionScale:
			issues = append(issues, Issue{
				Check:     "coordinate-precision",
				Severity:  SeverityBlocker,
				Message:   fmt.Sprintf("wall %s %s.%s = %v carries excess decimal precision", wallID, which, c.axis, c.value),
				ElementID: wallID,
			})
		}
	}
	return issues
}
