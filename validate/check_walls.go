package validate

import (
	"fmt"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
	"github.com/planforge/planforge/repair"
)

// checkDangling reports endpoints incident to exactly one wall. A
// dangler is critical, unless its only wall is exterior: loop seams make
// exterior-edge danglers ambiguous, so those downgrade to warnings.
func checkDangling(p *plan.Plan, _ Policy) []Issue {
	var issues []Issue
	points := repair.DanglingEndpoints(p.Walls)
	ids := repair.DanglingWallIDs(p.Walls)
	walls := p.WallIndex()
	for i, pt := range points {
		severity := SeverityCritical
		if w, ok := walls[ids[i]]; ok && w.External {
			severity = SeverityWarning
		}
		issues = append(issues, Issue{
			Check:     "dangling-endpoint",
			Severity:  severity,
			Message:   fmt.Sprintf("endpoint (%.2f, %.2f) of wall %s connects to nothing", pt.X, pt.Y, ids[i]),
			ElementID: ids[i],
		})
	}
	return issues
}

// checkWallLengths blocks on degenerate (zero-length) walls and warns on
// walls shorter than the policy minimum.
func checkWallLengths(p *plan.Plan, pol Policy) []Issue {
	var issues []Issue
	for _, w := range p.Walls {
		length := w.Length()
		switch {
		case length < geom.Epsilon:
			issues = append(issues, Issue{
				Check:     "wall-length",
				Severity:  SeverityBlocker,
				Message:   fmt.Sprintf("wall %s has zero length", w.ID),
				ElementID: w.ID,
			})
		case length < pol.MinWallLength:
			issues = append(issues, Issue{
				Check:     "wall-length",
				Severity:  SeverityWarning,
				Message:   fmt.Sprintf("wall %s is %.2f m long, below the %.2f m minimum", w.ID, length, pol.MinWallLength),
				ElementID: w.ID,
			})
		}
	}
	return issues
}
