package validate

import (
	"fmt"

	"github.com/planforge/planforge/plan"
)

// checkOpenings validates every opening's wall reference and in-bounds
// placement. An unresolved reference blocks; an out-of-bounds offset on
// an otherwise valid wall is critical.
func checkOpenings(p *plan.Plan, _ Policy) []Issue {
	var issues []Issue
	walls := p.WallIndex()
	for _, o := range p.Openings {
		wall, ok := walls[o.WallID]
		if !ok {
			issues = append(issues, Issue{
				Check:     "opening-reference",
				Severity:  SeverityBlocker,
				Message:   fmt.Sprintf("opening %s references missing wall %q", o.ID, o.WallID),
				ElementID: o.ID,
			})
			continue
		}
		if err := o.ValidateAgainst(wall); err != nil {
			issues = append(issues, Issue{
				Check:    "opening-position",
				Severity: SeverityCritical,
				Message: fmt.Sprintf("opening %s at offset %.2f m (width %.2f m) exceeds the %.2f m wall %s",
					o.ID, o.DistFromStart, o.Width, wall.Length(), wall.ID),
				ElementID: o.ID,
			})
		}
	}
	return issues
}
