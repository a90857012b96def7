package compliance

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// analyzeEgress locates exterior doors (door-type openings on external
// walls), interpolates their absolute positions, and measures each
// room's straight-line distance to its nearest exit. The plan egress
// distance is the maximum over rooms; the overall ceiling is 25 m and
// bedrooms additionally cap at 15 m. Rooms over their ceiling are listed
// as critical.
func analyzeEgress(p *plan.Plan, code BuildingCode) ([]Issue, *EgressAnalysis) {
	if len(p.Rooms) == 0 {
		return nil, nil
	}

	walls := p.WallIndex()
	var exits []plan.Point
	for _, o := range p.Openings {
		if !o.Type.IsDoor() {
			continue
		}
		wall, ok := walls[o.WallID]
		if !ok || !wall.External {
			continue
		}
		exits = append(exits, wall.PointAt(o.DistFromStart))
	}

	if len(exits) == 0 {
		return []Issue{{
			Rule:     "egress",
			Category: CategoryViolation,
			Severity: SeverityCritical,
			Message:  "no exterior door found; the plan has no emergency exit",
		}}, &EgressAnalysis{Passed: false}
	}

	var issues []Issue
	analysis := &EgressAnalysis{Passed: true}
	for _, room := range p.Rooms {
		nearest := math.Inf(1)
		for _, exit := range exits {
			if d := geom.Dist(room.Center, exit); d < nearest {
				nearest = d
			}
		}
		if nearest > analysis.MaxDistanceToExit {
			analysis.MaxDistanceToExit = nearest
		}
		ceiling := code.MaxEgressDistance
		if room.Type == plan.RoomBedroom && code.MaxBedroomEgress < ceiling {
			ceiling = code.MaxBedroomEgress
		}
		if nearest > ceiling {
			analysis.Passed = false
			analysis.CriticalRooms = append(analysis.CriticalRooms, room.ID)
			issues = append(issues, Issue{
				Rule:      "egress",
				Category:  CategoryViolation,
				Severity:  SeverityCritical,
				Message:   fmt.Sprintf("%s is %.1f m from the nearest exit, maximum is %.1f m", roomName(room), nearest, ceiling),
				ElementID: room.ID,
			})
		}
	}

	if analysis.Passed {
		issues = append(issues, Issue{
			Rule:     "egress",
			Category: CategoryCheck,
			Severity: SeverityMinor,
			Message:  fmt.Sprintf("longest escape route is %.1f m, within limits", analysis.MaxDistanceToExit),
		})
	}
	return issues, analysis
}
