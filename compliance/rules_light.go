package compliance

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// openingPosition interpolates an opening's absolute position: the
// midpoint of the opening along its host wall. Returns false when the
// wall reference does not resolve.
func openingPosition(o plan.Opening, walls map[string]plan.WallSegment) (plan.Point, bool) {
	wall, ok := walls[o.WallID]
	if !ok {
		return plan.Point{}, false
	}
	return wall.PointAt(o.DistFromStart + o.Width/2), true
}

// openingNearRoom reports whether the opening's wall position lies
// within coeff·√(room area) of the room center. This is the room↔opening
// association heuristic; the search radius grows with the room so large
// rooms reach the windows on their far walls.
func openingNearRoom(o plan.Opening, room plan.RoomZone, walls map[string]plan.WallSegment, coeff float64) bool {
	pos, ok := openingPosition(o, walls)
	if !ok {
		return false
	}
	radius := coeff * math.Sqrt(room.Area.Value)
	return geom.Dist(pos, room.Center) <= radius
}

// checkNaturalLight requires each habitable room's associated window
// area (windows on exterior walls within the search radius) to reach
// MinLightRatio of the room area.
func checkNaturalLight(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	walls := p.WallIndex()
	for _, room := range p.Rooms {
		if !room.Type.Habitable() || room.Area.Value <= 0 {
			continue
		}
		var windowArea float64
		for _, o := range p.Openings {
			if !o.Type.IsWindow() {
				continue
			}
			wall, ok := walls[o.WallID]
			if !ok || !wall.External {
				continue
			}
			if openingNearRoom(o, room, walls, code.LightSearchCoeff) {
				windowArea += o.Width * o.Height
			}
		}
		ratio := windowArea / room.Area.Value
		if ratio < code.MinLightRatio {
			issues = append(issues, Issue{
				Rule:      "natural-light",
				Category:  CategoryWarning,
				Severity:  SeverityMajor,
				Message:   fmt.Sprintf("%s window area is %.0f%% of floor area, minimum is %.0f%%", roomName(room), ratio*100, code.MinLightRatio*100),
				ElementID: room.ID,
			})
		}
	}
	return issues
}
