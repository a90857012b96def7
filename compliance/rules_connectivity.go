package compliance

import (
	"fmt"

	"github.com/planforge/planforge/plan"
	"github.com/planforge/planforge/repair"
)

// checkConnectivity reports dangling wall endpoints — the same detection
// the repair pipeline's stage 4 uses, but report-only: the rule engine
// never mutates the plan.
func checkConnectivity(p *plan.Plan) []Issue {
	var issues []Issue
	points := repair.DanglingEndpoints(p.Walls)
	ids := repair.DanglingWallIDs(p.Walls)
	for i, pt := range points {
		issues = append(issues, Issue{
			Rule:      "wall-connectivity",
			Category:  CategoryWarning,
			Severity:  SeverityMinor,
			Message:   fmt.Sprintf("wall endpoint (%.2f, %.2f) connects to nothing", pt.X, pt.Y),
			ElementID: ids[i],
		})
	}
	return issues
}
