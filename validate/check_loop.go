package validate

import (
	"fmt"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// minExteriorWalls is the smallest wall count that can enclose an area.
const minExteriorWalls = 3

// checkExteriorLoop blocks when the building envelope cannot close:
// fewer than three exterior walls, or an open seam between consecutive
// exterior walls (wrap-around included).
func checkExteriorLoop(p *plan.Plan, pol Policy) []Issue {
	ext := p.ExteriorWalls()
	if len(ext) == 0 {
		return []Issue{{
			Check:    "exterior-loop",
			Severity: SeverityBlocker,
			Message:  "plan has no exterior boundary",
		}}
	}
	if len(ext) < minExteriorWalls {
		return []Issue{{
			Check:    "exterior-loop",
			Severity: SeverityBlocker,
			Message:  fmt.Sprintf("exterior loop has %d walls, at least %d required to enclose an area", len(ext), minExteriorWalls),
		}}
	}
	var issues []Issue
	for i := range ext {
		next := ext[(i+1)%len(ext)]
		if gap := geom.Dist(ext[i].End, next.Start); gap > pol.SeamTolerance {
			issues = append(issues, Issue{
				Check:     "exterior-loop",
				Severity:  SeverityBlocker,
				Message:   fmt.Sprintf("exterior seam between walls %s and %s is open by %.2f m", ext[i].ID, next.ID, gap),
				ElementID: ext[i].ID,
			})
		}
	}
	return issues
}
