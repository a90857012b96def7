package validate

import (
	"fmt"

	"github.com/planforge/planforge/plan"
)

// checkAreas applies the aggregate area sanity rules: a plan with no
// rooms blocks outright; the total room area must reach the 20 m²
// absolute floor and, when the policy carries a target, land within
// [60%, 120%] of it; each room must meet its per-type minimum.
// Undershooting blocks (the plan is unusable), overshooting warns (the
// generator overshot but the plan may still serve).
func checkAreas(p *plan.Plan, pol Policy) []Issue {
	if len(p.Rooms) == 0 {
		return []Issue{{
			Check:    "area-sanity",
			Severity: SeverityBlocker,
			Message:  "plan has no rooms",
		}}
	}

	var issues []Issue
	total := p.TotalRoomArea()
	if total < absoluteMinArea {
		issues = append(issues, Issue{
			Check:    "area-sanity",
			Severity: SeverityBlocker,
			Message:  fmt.Sprintf("total area too small: %.1f m² is below the absolute %.0f m² floor", total, absoluteMinArea),
		})
	}
	if pol.TargetArea > 0 {
		switch {
		case total < pol.TargetArea*areaLowerRatio:
			issues = append(issues, Issue{
				Check:    "area-sanity",
				Severity: SeverityBlocker,
				Message: fmt.Sprintf("total area too small: %.1f m² is under %.0f%% of the %.1f m² target",
					total, areaLowerRatio*100, pol.TargetArea),
			})
		case total > pol.TargetArea*areaUpperRatio:
			issues = append(issues, Issue{
				Check:    "area-sanity",
				Severity: SeverityWarning,
				Message: fmt.Sprintf("total area too large: %.1f m² is over %.0f%% of the %.1f m² target",
					total, areaUpperRatio*100, pol.TargetArea),
			})
		}
	}
	for _, room := range p.Rooms {
		min, ok := pol.MinRoomArea[room.Type]
		if !ok {
			continue
		}
		if room.Area.Value < min {
			issues = append(issues, Issue{
				Check:     "area-sanity",
				Severity:  SeverityBlocker,
				Message:   fmt.Sprintf("room %s (%s) is %.1f m², minimum is %.1f m²", room.ID, room.Type, room.Area.Value, min),
				ElementID: room.ID,
			})
		}
	}
	return issues
}
